// Where: warmup/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher over the lifecycle hooks.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/serverless-warmup/internal/config"
	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/meta"
	"github.com/poruru/serverless-warmup/internal/usecase/warmup"
	"github.com/poruru/serverless-warmup/internal/version"
)

// Dependencies holds all injected dependencies required for command
// execution, so tests can swap the service loader and the AWS invoker.
type Dependencies struct {
	Out        io.Writer
	LoadSpec   func(path string) (*service.Spec, error)
	NewInvoker func(ctx context.Context, region, profile string) (warmup.Invoker, error)
	LookupEnv  func(string) (string, bool)
}

// CLI defines the command-line interface parsed by Kong.
type CLI struct {
	Config  string `short:"c" default:"serverless.yml" help:"Path to the service definition file"`
	Stage   string `short:"s" help:"Deployment stage (default: provider stage)"`
	Region  string `short:"r" help:"Deployment region (default: provider region)"`
	EnvFile string `name:"env-file" help:"Path to .env file"`
	NoEmoji bool   `name:"no-emoji" help:"Disable emoji output"`

	Package    PackageCmd    `cmd:"" help:"Generate the warmer artifact and register the function"`
	PostDeploy PostDeployCmd `cmd:"" name:"post-deploy" help:"Pre-warm the deployed warmer once"`
	Preview    PreviewCmd    `cmd:"" help:"Print the resolved configuration and synthesized source"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type PackageCmd struct {
	Root string `help:"Deployable root directory (default: service file directory)"`
}

type PostDeployCmd struct {
	Profile string `help:"AWS shared config profile"`
}

type (
	PreviewCmd struct{}
	VersionCmd struct{}
)

// Run parses the arguments and dispatches to the matching command handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.LoadSpec == nil {
		deps.LoadSpec = config.Load
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Keeps deployed functions warm by generating a scheduled warmer."),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	loadEnvFile(cli, out)

	switch ctx.Command() {
	case "package":
		return runPackage(cli, deps, out)
	case "post-deploy":
		return runPostDeploy(cli, deps, out)
	case "preview":
		return runPreview(cli, deps, out)
	case "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// loadEnvFile loads an explicit env file, or .env when present in the
// working directory, matching the host framework's convention.
func loadEnvFile(cli CLI, out io.Writer) {
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}

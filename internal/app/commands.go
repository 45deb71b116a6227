// Where: warmup/internal/app/commands.go
// What: Command handlers wiring CLI flags into the lifecycle workflows.
// Why: Keep parse/dispatch separate from workflow construction.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/poruru/serverless-warmup/internal/config"
	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/infra/ui"
	"github.com/poruru/serverless-warmup/internal/usecase/warmup"
)

func runPackage(cli CLI, deps Dependencies, out io.Writer) int {
	spec, stage, region, code := loadService(cli, deps, out)
	if spec == nil {
		return code
	}

	root := cli.Package.Root
	if root == "" {
		root = filepath.Dir(cli.Config)
	}

	packager := &warmup.Packager{
		Root:   root,
		Stage:  stage,
		Region: region,
		Out:    ui.NewWithEmoji(out, !cli.NoEmoji),
	}
	if err := packager.AfterPackageInitialize(spec); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func runPostDeploy(cli CLI, deps Dependencies, out io.Writer) int {
	spec, stage, region, code := loadService(cli, deps, out)
	if spec == nil {
		return code
	}

	ctx := context.Background()
	var newInvoker func(ctx context.Context) (warmup.Invoker, error)
	if deps.NewInvoker != nil {
		newInvoker = func(ctx context.Context) (warmup.Invoker, error) {
			return deps.NewInvoker(ctx, region, cli.PostDeploy.Profile)
		}
	}

	deployer := &warmup.Deployer{
		Stage:      stage,
		Region:     region,
		Out:        ui.NewWithEmoji(out, !cli.NoEmoji),
		NewInvoker: newInvoker,
		LookupEnv:  deps.LookupEnv,
	}
	if err := deployer.AfterDeployFunctions(ctx, spec); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func runPreview(cli CLI, deps Dependencies, out io.Writer) int {
	spec, stage, region, code := loadService(cli, deps, out)
	if spec == nil {
		return code
	}

	result, err := warmup.Preview(spec, stage, region)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.NewWithEmoji(out, !cli.NoEmoji)
	console.Header("🔥", "WarmUp preview")
	console.Item("Stage", stage)
	console.Item("Region", region)
	console.Item("Function", result.Config.Name)
	console.Item("Folder", result.Config.FolderName)
	console.Item("Schedule", strings.Join(result.Config.Schedule, ", "))
	console.Item("Prewarm", result.Config.Prewarm)
	console.Item("Targets", len(result.Targets))
	for _, name := range result.Targets {
		console.ItemPlain(name)
	}
	if result.Source != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, result.Source)
	}
	return 0
}

// loadService loads the spec and resolves the stage/region fallback chain.
// On failure it reports the error and returns a nil spec with the exit code.
func loadService(cli CLI, deps Dependencies, out io.Writer) (*service.Spec, string, string, int) {
	spec, err := deps.LoadSpec(cli.Config)
	if err != nil {
		return nil, "", "", exitWithError(out, err)
	}
	stage := config.ResolveStage(cli.Stage, spec)
	region := config.ResolveRegion(cli.Region, spec)
	return spec, stage, region, 0
}

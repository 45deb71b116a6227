// Where: warmup/cmd/warmup/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"

	"github.com/poruru/serverless-warmup/internal/app"
	"github.com/poruru/serverless-warmup/internal/config"
	"github.com/poruru/serverless-warmup/internal/infra/lambda"
	"github.com/poruru/serverless-warmup/internal/usecase/warmup"
)

// buildDependencies constructs the runtime dependencies required by the CLI:
// the service file loader and the AWS Lambda invoker factory.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:      os.Stdout,
		LoadSpec: config.Load,
		NewInvoker: func(ctx context.Context, region, profile string) (warmup.Invoker, error) {
			return lambda.New(ctx, region, profile)
		},
		LookupEnv: os.LookupEnv,
	}
}

// Where: warmup/cmd/warmup/main.go
// What: CLI entrypoint.
// Why: Execute warmup commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/serverless-warmup/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}

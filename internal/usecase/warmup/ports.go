// Where: warmup/internal/usecase/warmup/ports.go
// What: Ports consumed by the packaging and deploy workflows.
// Why: Keep the workflows testable with fakes, per the CLI's DI style.
package warmup

import (
	"context"

	"github.com/poruru/serverless-warmup/internal/infra/lambda"
)

// UserInterface is the progress output surface of the workflows.
type UserInterface interface {
	Info(msg string)
	ItemPlain(msg string)
	Success(msg string)
	Warn(msg string)
}

// Invoker issues one synchronous invocation against a deployed function.
type Invoker interface {
	Invoke(ctx context.Context, in lambda.InvokeInput) error
}

// WriteFileFunc durably writes one generated file.
type WriteFileFunc func(path, content string) error

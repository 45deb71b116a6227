// Where: warmup/internal/usecase/warmup/fakes_test.go
// What: Shared fakes for workflow tests.
// Why: Exercise the pipelines without a filesystem or AWS account.
package warmup

import (
	"context"

	"github.com/poruru/serverless-warmup/internal/infra/lambda"
)

type fakeUI struct {
	infos     []string
	items     []string
	successes []string
	warnings  []string
}

func (f *fakeUI) Info(msg string)      { f.infos = append(f.infos, msg) }
func (f *fakeUI) ItemPlain(msg string) { f.items = append(f.items, msg) }
func (f *fakeUI) Success(msg string)   { f.successes = append(f.successes, msg) }
func (f *fakeUI) Warn(msg string)      { f.warnings = append(f.warnings, msg) }

type fakeWriter struct {
	files map[string]string
	err   error
}

func (f *fakeWriter) write(path, content string) error {
	if f.err != nil {
		return f.err
	}
	if f.files == nil {
		f.files = map[string]string{}
	}
	f.files[path] = content
	return nil
}

type fakeInvoker struct {
	calls []lambda.InvokeInput
	err   error
}

func (f *fakeInvoker) Invoke(_ context.Context, in lambda.InvokeInput) error {
	f.calls = append(f.calls, in)
	return f.err
}

// Where: warmup/internal/infra/lambda/invoker_test.go
// What: Tests for the Lambda invoke adapter.
// Why: Parameter mapping and function-error handling are easy to regress.
package lambda

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type fakeInvokeAPI struct {
	in  *awslambda.InvokeInput
	out *awslambda.InvokeOutput
	err error
}

func (f *fakeInvokeAPI) Invoke(_ context.Context, params *awslambda.InvokeInput, _ ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error) {
	f.in = params
	if f.out == nil {
		f.out = &awslambda.InvokeOutput{}
	}
	return f.out, f.err
}

func TestInvokeMapsParameters(t *testing.T) {
	api := &fakeInvokeAPI{}
	inv := NewFromAPI(api)

	err := inv.Invoke(context.Background(), InvokeInput{
		FunctionName:  "svc-dev-warmup-plugin",
		Qualifier:     "$LATEST",
		ClientContext: "Zm9v",
		Payload:       []byte(`{"source":"serverless-plugin-warmup"}`),
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if got := aws.ToString(api.in.FunctionName); got != "svc-dev-warmup-plugin" {
		t.Fatalf("function name = %q", got)
	}
	if api.in.InvocationType != types.InvocationTypeRequestResponse {
		t.Fatalf("invocation type = %v", api.in.InvocationType)
	}
	if api.in.LogType != types.LogTypeNone {
		t.Fatalf("log type = %v", api.in.LogType)
	}
	if got := aws.ToString(api.in.Qualifier); got != "$LATEST" {
		t.Fatalf("qualifier = %q", got)
	}
}

func TestInvokeSurfacesTransportError(t *testing.T) {
	inv := NewFromAPI(&fakeInvokeAPI{err: errors.New("timeout")})
	if err := inv.Invoke(context.Background(), InvokeInput{FunctionName: "fn"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInvokeSurfacesFunctionError(t *testing.T) {
	api := &fakeInvokeAPI{out: &awslambda.InvokeOutput{FunctionError: aws.String("Unhandled")}}
	inv := NewFromAPI(api)
	if err := inv.Invoke(context.Background(), InvokeInput{FunctionName: "fn"}); err == nil {
		t.Fatalf("expected function error to surface")
	}
}

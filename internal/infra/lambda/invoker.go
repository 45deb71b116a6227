// Where: warmup/internal/infra/lambda/invoker.go
// What: AWS Lambda adapter for synchronous warm-up invocations.
// Why: Map the plugin's invoke port onto the SDK client.
package lambda

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// InvokeAPI is the subset of the Lambda client used by the invoker.
type InvokeAPI interface {
	Invoke(ctx context.Context, params *awslambda.InvokeInput, optFns ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error)
}

// Invoker performs synchronous invocations against deployed functions.
type Invoker struct {
	api InvokeAPI
}

// InvokeInput carries one warm-up invocation request.
type InvokeInput struct {
	FunctionName  string
	Qualifier     string
	ClientContext string
	Payload       []byte
}

// New builds an Invoker from the default AWS credential chain.
// Profile is optional; when set it selects a shared-config profile.
func New(ctx context.Context, region, profile string) (*Invoker, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Invoker{api: awslambda.NewFromConfig(cfg)}, nil
}

// NewFromAPI builds an Invoker around an existing client, used by tests.
func NewFromAPI(api InvokeAPI) *Invoker {
	return &Invoker{api: api}
}

// Invoke issues one synchronous invocation with log capture disabled.
// A function-level error reported in the response counts as a failure even
// though the transport call succeeded.
func (i *Invoker) Invoke(ctx context.Context, in InvokeInput) error {
	if i.api == nil {
		return fmt.Errorf("lambda client is nil")
	}
	out, err := i.api.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   aws.String(in.FunctionName),
		InvocationType: types.InvocationTypeRequestResponse,
		LogType:        types.LogTypeNone,
		Qualifier:      aws.String(in.Qualifier),
		ClientContext:  aws.String(in.ClientContext),
		Payload:        in.Payload,
	})
	if err != nil {
		return err
	}
	if out.FunctionError != nil && *out.FunctionError != "" {
		return fmt.Errorf("function error: %s", *out.FunctionError)
	}
	return nil
}

// Where: warmup/internal/usecase/warmup/deployer.go
// What: Post-deploy pipeline: resolve and optionally pre-warm once.
// Why: Eliminate the very first cold start before the schedule fires.
package warmup

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/poruru/serverless-warmup/internal/domain/artifact"
	"github.com/poruru/serverless-warmup/internal/domain/config"
	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/infra/lambda"
	"github.com/poruru/serverless-warmup/internal/meta"
)

// Deployer implements the post-deploy lifecycle capability.
type Deployer struct {
	Stage   string
	Region  string
	Out     UserInterface
	Invoker Invoker
	// NewInvoker builds the invoker on demand when Invoker is nil. It is
	// only consulted once pre-warming is known to be enabled, so nothing
	// AWS-related runs for deployments that never pre-warm.
	NewInvoker func(ctx context.Context) (Invoker, error)
	// LookupEnv defaults to os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)
}

// AfterDeployFunctions re-resolves the configuration and, when pre-warming
// is enabled, invokes the deployed warmer exactly once. Failures to build
// the invoker or to invoke are logged and swallowed: a pre-warm problem
// must never fail the surrounding deployment.
func (d *Deployer) AfterDeployFunctions(ctx context.Context, spec *service.Spec) error {
	cfg := config.Resolve(d.identity(spec), spec.Custom)
	if !cfg.Prewarm {
		return nil
	}

	invoker := d.Invoker
	if invoker == nil && d.NewInvoker != nil {
		built, err := d.NewInvoker(ctx)
		if err != nil {
			d.Out.Warn(fmt.Sprintf("WarmUp: pre-warm of %s skipped: %v", cfg.Name, err))
			return nil
		}
		invoker = built
	}
	if invoker == nil {
		d.Out.Warn("WarmUp: pre-warm skipped, no invoker configured")
		return nil
	}

	d.Out.Info(fmt.Sprintf("WarmUp: pre-warming %s", cfg.Name))
	err := invoker.Invoke(ctx, lambda.InvokeInput{
		FunctionName:  cfg.Name,
		Qualifier:     d.qualifier(),
		ClientContext: base64.StdEncoding.EncodeToString([]byte(artifact.ClientContext(cfg.SourcePayload))),
		Payload:       []byte(cfg.SourcePayload),
	})
	if err != nil {
		d.Out.Warn(fmt.Sprintf("WarmUp: pre-warm of %s failed: %v", cfg.Name, err))
		return nil
	}

	d.Out.Success(fmt.Sprintf("WarmUp: pre-warmed %s", cfg.Name))
	return nil
}

// qualifier resolves the version qualifier: alias environment override when
// present, otherwise the unqualified latest alias.
func (d *Deployer) qualifier() string {
	lookup := d.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(meta.AliasEnvVar); ok && v != "" {
		return v
	}
	return meta.LatestQualifier
}

func (d *Deployer) identity(spec *service.Spec) config.ServiceIdentity {
	return config.ServiceIdentity{
		Service: spec.Service,
		Stage:   d.Stage,
		Region:  d.Region,
	}
}

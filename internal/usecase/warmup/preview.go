// Where: warmup/internal/usecase/warmup/preview.go
// What: Dry-run view of one packaging pass.
// Why: Let users inspect resolution and synthesis without touching disk.
package warmup

import (
	"fmt"

	"github.com/poruru/serverless-warmup/internal/domain/artifact"
	"github.com/poruru/serverless-warmup/internal/domain/config"
	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/domain/target"
)

// PreviewResult carries everything a packaging pass would produce.
type PreviewResult struct {
	Config  config.WarmerConfig
	Targets []string
	// Source is empty when the selection is empty.
	Source string
}

// Preview resolves and selects exactly like the packager but renders the
// artifact in memory only.
func Preview(spec *service.Spec, stage, region string) (PreviewResult, error) {
	cfg := config.Resolve(config.ServiceIdentity{
		Service: spec.Service,
		Stage:   stage,
		Region:  region,
	}, spec.Custom)

	targets := target.Select(spec.Inventory(stage), stage, cfg.DefaultPolicy)
	result := PreviewResult{Config: cfg, Targets: targets}
	if len(targets) == 0 {
		return result, nil
	}

	source, err := artifact.Synthesize(targets, cfg)
	if err != nil {
		return PreviewResult{}, fmt.Errorf("synthesize warmer source: %w", err)
	}
	result.Source = source
	return result, nil
}

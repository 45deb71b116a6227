// Where: warmup/internal/usecase/warmup/packager.go
// What: Package-time pipeline: resolve, select, synthesize, register.
// Why: One pass that leaves the service map and deployable root consistent.
package warmup

import (
	"fmt"
	"path/filepath"

	"github.com/poruru/serverless-warmup/internal/domain/artifact"
	"github.com/poruru/serverless-warmup/internal/domain/config"
	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/domain/target"
	"github.com/poruru/serverless-warmup/internal/infra/fileops"
	"github.com/poruru/serverless-warmup/internal/meta"
)

// Packager implements the package-initialize lifecycle capability.
type Packager struct {
	// Root is the deployable root the warmer folder is written under.
	Root   string
	Stage  string
	Region string
	Out    UserInterface
	// WriteFile defaults to fileops.WriteFile when nil.
	WriteFile WriteFileFunc
}

// AfterPackageInitialize runs the full packaging pipeline. An empty target
// selection is a valid terminal outcome: it logs a notice and stops without
// writing the artifact or registering the warmer. A failed artifact write is
// fatal to the packaging pass and propagates.
func (p *Packager) AfterPackageInitialize(spec *service.Spec) error {
	cfg := config.Resolve(p.identity(spec), spec.Custom)

	targets := target.Select(spec.Inventory(p.Stage), p.Stage, cfg.DefaultPolicy)
	if len(targets) == 0 {
		p.Out.Info(fmt.Sprintf("WarmUp: no functions to warm up on stage %s", p.Stage))
		return nil
	}

	p.Out.Info(fmt.Sprintf("WarmUp: warming up %d function(s) on stage %s", len(targets), p.Stage))
	for _, name := range targets {
		p.Out.ItemPlain(name)
	}

	source, err := artifact.Synthesize(targets, cfg)
	if err != nil {
		return fmt.Errorf("synthesize warmer source: %w", err)
	}

	write := p.WriteFile
	if write == nil {
		write = fileops.WriteFile
	}
	artifactPath := filepath.Join(p.Root, cfg.FolderName, meta.ArtifactFilename)
	if err := write(artifactPath, source); err != nil {
		return fmt.Errorf("write warmer artifact: %w", err)
	}

	fn := service.Register(spec, cfg)
	fragment, err := artifact.RenderFunctionFragment(fn)
	if err != nil {
		return fmt.Errorf("render function fragment: %w", err)
	}
	fragmentPath := filepath.Join(p.Root, cfg.FolderName, meta.FragmentFilename)
	if err := write(fragmentPath, fragment); err != nil {
		return fmt.Errorf("write function fragment: %w", err)
	}

	p.Out.Success(fmt.Sprintf("WarmUp: registered %s with %d schedule trigger(s)", cfg.Name, len(cfg.Schedule)))
	return nil
}

func (p *Packager) identity(spec *service.Spec) config.ServiceIdentity {
	return config.ServiceIdentity{
		Service: spec.Service,
		Stage:   p.Stage,
		Region:  p.Region,
	}
}

// Where: warmup/internal/domain/service/register.go
// What: Warmer function registration into the host function map.
// Why: Declare the generated artifact so the host packages and schedules it.
package service

import (
	"fmt"

	"github.com/poruru/serverless-warmup/internal/domain/config"
	"github.com/poruru/serverless-warmup/internal/meta"
)

// Register builds the warmer function definition from the resolved
// configuration and inserts it into the service's function map under the
// fixed registration key, overwriting any prior entry. The packaging rules
// exclude everything except the generated folder so the warmer bundle stays
// independent of the rest of the application.
func Register(spec *Spec, cfg config.WarmerConfig) *Function {
	events := make([]Event, 0, len(cfg.Schedule))
	for _, expression := range cfg.Schedule {
		events = append(events, Event{Schedule: expression})
	}

	fn := &Function{
		Description: meta.WarmerDescription,
		Events:      events,
		Handler:     fmt.Sprintf("%s/index.%s", cfg.FolderName, meta.HandlerExportName),
		MemorySize:  cfg.MemorySize,
		Name:        cfg.Name,
		Runtime:     meta.WarmerRuntime,
		Package: &PackageRules{
			Exclude: []string{"**"},
			Include: []string{cfg.FolderName + "/**"},
		},
		Timeout: cfg.Timeout,
	}
	if cfg.Role != "" {
		fn.Role = cfg.Role
	}
	if len(cfg.Tags) > 0 {
		fn.Tags = cfg.Tags
	}

	if spec.Functions == nil {
		spec.Functions = map[string]*Function{}
	}
	if _, exists := spec.Functions[meta.RegistrationKey]; !exists {
		spec.FunctionOrder = append(spec.FunctionOrder, meta.RegistrationKey)
	}
	spec.Functions[meta.RegistrationKey] = fn
	return fn
}

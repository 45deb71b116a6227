// Where: warmup/internal/domain/service/service.go
// What: In-memory model of the host service definition.
// Why: Give the pipeline a mutable function map detached from file parsing.
package service

import (
	"fmt"

	"github.com/poruru/serverless-warmup/internal/domain/target"
	"github.com/poruru/serverless-warmup/internal/meta"
)

// Spec is the host service definition as loaded from the service file.
type Spec struct {
	Service   string
	Provider  Provider
	Custom    map[string]any
	Functions map[string]*Function
	// FunctionOrder preserves declaration order of the function map, which
	// the selector relies on for deterministic target lists.
	FunctionOrder []string
}

// Provider holds the provider block values relevant to this plugin.
type Provider struct {
	Name   string
	Stage  string
	Region string
}

// Function is one entry of the service's function map. Host-declared
// functions populate only a few fields; the registered warmer fills most.
type Function struct {
	Name        string            `yaml:"name,omitempty"`
	Handler     string            `yaml:"handler,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Runtime     string            `yaml:"runtime,omitempty"`
	MemorySize  int               `yaml:"memorySize,omitempty"`
	Timeout     int               `yaml:"timeout,omitempty"`
	Role        string            `yaml:"role,omitempty"`
	Tags        map[string]string `yaml:"tags,omitempty"`
	Events      []Event           `yaml:"events,omitempty"`
	Package     *PackageRules     `yaml:"package,omitempty"`
	// Warmup is the raw per-function enablement directive.
	Warmup any `yaml:"warmup,omitempty"`
}

// Event is a function trigger. The warmer only ever emits schedule triggers.
type Event struct {
	Schedule string `yaml:"schedule"`
}

// PackageRules narrows what gets bundled with a function.
type PackageRules struct {
	Exclude []string `yaml:"exclude,omitempty"`
	Include []string `yaml:"include,omitempty"`
}

// Inventory returns the read-only descriptors of the host's functions in
// declaration order. The warmer's own registration entry is excluded so a
// repeated packaging pass never selects the warmer as its own target.
// Deployed names default to the conventional {service}-{stage}-{logical}.
func (s *Spec) Inventory(stage string) []target.Descriptor {
	out := make([]target.Descriptor, 0, len(s.FunctionOrder))
	for _, logical := range s.FunctionOrder {
		if logical == meta.RegistrationKey {
			continue
		}
		fn := s.Functions[logical]
		if fn == nil {
			continue
		}
		name := fn.Name
		if name == "" {
			name = fmt.Sprintf("%s-%s-%s", s.Service, stage, logical)
		}
		out = append(out, target.Descriptor{
			FunctionName: logical,
			Name:         name,
			Warmup:       fn.Warmup,
		})
	}
	return out
}

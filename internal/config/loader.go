// Where: warmup/internal/config/loader.go
// What: Service file loading and stage/region fallback resolution.
// Why: Hand the pipeline a validated, order-preserving service model.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/meta"
	"gopkg.in/yaml.v3"
)

type rawService struct {
	Service   string                 `yaml:"service"`
	Provider  rawProvider            `yaml:"provider"`
	Custom    map[string]any         `yaml:"custom"`
	Functions map[string]rawFunction `yaml:"functions"`
}

type rawProvider struct {
	Name   string `yaml:"name"`
	Stage  string `yaml:"stage"`
	Region string `yaml:"region"`
}

// rawFunction decodes only the fields this plugin reads. Host functions may
// carry arbitrary event and resource shapes which are none of our business.
type rawFunction struct {
	Name    string `yaml:"name"`
	Handler string `yaml:"handler"`
	Warmup  any    `yaml:"warmup"`
}

// Load reads, validates, and decodes a serverless service file.
func Load(path string) (*service.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service file: %w", err)
	}

	if err := validateServiceFile(data); err != nil {
		return nil, fmt.Errorf("validate service file %s: %w", path, err)
	}

	var raw rawService
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode service file %s: %w", path, err)
	}

	order, err := functionOrder(data)
	if err != nil {
		return nil, fmt.Errorf("decode service file %s: %w", path, err)
	}

	spec := &service.Spec{
		Service: raw.Service,
		Provider: service.Provider{
			Name:   raw.Provider.Name,
			Stage:  raw.Provider.Stage,
			Region: raw.Provider.Region,
		},
		Custom:        raw.Custom,
		Functions:     make(map[string]*service.Function, len(raw.Functions)),
		FunctionOrder: order,
	}
	for logical, fn := range raw.Functions {
		spec.Functions[logical] = &service.Function{
			Name:    fn.Name,
			Handler: fn.Handler,
			Warmup:  fn.Warmup,
		}
	}
	return spec, nil
}

// functionOrder re-reads the document as a node tree to recover the
// declaration order of the functions mapping, which map decoding loses.
func functionOrder(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "functions" {
			continue
		}
		functions := root.Content[i+1]
		if functions.Kind != yaml.MappingNode {
			return nil, nil
		}
		order := make([]string, 0, len(functions.Content)/2)
		for j := 0; j+1 < len(functions.Content); j += 2 {
			order = append(order, functions.Content[j].Value)
		}
		return order, nil
	}
	return nil, nil
}

// ResolveStage applies the stage fallback chain: explicit option, process
// environment, provider block, hardcoded default.
func ResolveStage(flag string, spec *service.Spec) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_STAGE")); v != "" {
		return v
	}
	if spec != nil && spec.Provider.Stage != "" {
		return spec.Provider.Stage
	}
	return meta.DefaultStage
}

// ResolveRegion applies the same fallback chain for the region.
func ResolveRegion(flag string, spec *service.Spec) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_REGION")); v != "" {
		return v
	}
	if spec != nil && spec.Provider.Region != "" {
		return spec.Provider.Region
	}
	return meta.DefaultRegion
}

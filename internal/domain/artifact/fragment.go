// Where: warmup/internal/domain/artifact/fragment.go
// What: Render the service-definition fragment for the registered warmer.
// Why: Give hosts a mergeable YAML view of the in-memory registration.
package artifact

import (
	"bytes"

	"github.com/poruru/serverless-warmup/internal/domain/service"
	"github.com/poruru/serverless-warmup/internal/meta"
	"gopkg.in/yaml.v3"
)

const fragmentHeader = "# Auto-generated by warmup. DO NOT EDIT MANUALLY - Regenerate with: warmup package\n\n"

// RenderFunctionFragment serializes the warmer function definition as the
// YAML fragment written next to the handler source.
func RenderFunctionFragment(fn *service.Function) (string, error) {
	payload := map[string]any{
		"functions": map[string]any{
			meta.RegistrationKey: fn,
		},
	}
	data, err := marshalYAML(payload, 2)
	if err != nil {
		return "", err
	}
	return fragmentHeader + string(data), nil
}

func marshalYAML(value any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)
	if err := encoder.Encode(value); err != nil {
		_ = encoder.Close()
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

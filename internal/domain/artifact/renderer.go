// Where: warmup/internal/domain/artifact/renderer.go
// What: Render the warmer handler source from the embedded template.
// Why: Keep synthesis a pure, deterministic function of targets and config.
package artifact

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strconv"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/serverless-warmup/internal/domain/config"
	"github.com/poruru/serverless-warmup/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Synthesize renders the warmer handler body for the selected targets.
// The emitted program invokes every target concurrently, settles all
// invocations, logs each outcome plus a final failure count, and never
// raises. Output is byte-identical for identical inputs.
func Synthesize(targets []string, cfg config.WarmerConfig) (string, error) {
	data := warmerTemplateData{
		Targets:         targets,
		PayloadLiteral:  jsStringLiteral(cfg.SourcePayload),
		ClientContext:   ClientContext(cfg.SourcePayload),
		HandlerExport:   meta.HandlerExportName,
		AliasEnvVar:     meta.AliasEnvVar,
		LatestQualifier: meta.LatestQualifier,
	}
	return renderTemplate("warmer.ts.tmpl", data)
}

// ClientContext builds the opaque context document carried by every warm-up
// invocation; the template base64-encodes it.
func ClientContext(sourcePayload string) string {
	return fmt.Sprintf(`{"custom":%s}`, sourcePayload)
}

type warmerTemplateData struct {
	Targets         []string
	PayloadLiteral  string
	ClientContext   string
	HandlerExport   string
	AliasEnvVar     string
	LatestQualifier string
}

// jsStringLiteral quotes a payload as a JavaScript string literal.
// strconv.Quote escapes are a strict subset of ECMAScript string escapes.
func jsStringLiteral(value string) string {
	return strconv.Quote(value)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		tmpl, ok := cached.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return tmpl, nil
	}
	pathName := "templates/" + name
	tmpl, err := template.New(path.Base(pathName)).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, pathName)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

// Where: warmup/internal/domain/artifact/renderer_test.go
// What: Tests for warmer source synthesis and fragment rendering.
// Why: The generated text is asserted structurally, never executed here.
package artifact

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/poruru/serverless-warmup/internal/domain/config"
	"github.com/poruru/serverless-warmup/internal/domain/service"
)

func testConfig() config.WarmerConfig {
	return config.Resolve(config.ServiceIdentity{Service: "svc", Stage: "dev"}, nil)
}

func TestSynthesizeContainsEachTargetOnceInOrder(t *testing.T) {
	src, err := Synthesize([]string{"fnA", "fnB"}, testConfig())
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	posA := strings.Index(src, "'fnA'")
	posB := strings.Index(src, "'fnB'")
	if posA < 0 || posB < 0 {
		t.Fatalf("missing target literals:\n%s", src)
	}
	if posA > posB {
		t.Fatalf("targets out of order: fnA@%d fnB@%d", posA, posB)
	}
	if n := strings.Count(src, "fnA"); n != 1 {
		t.Fatalf("fnA appears %d times", n)
	}
	if n := strings.Count(src, "fnB"); n != 1 {
		t.Fatalf("fnB appears %d times", n)
	}
}

func TestSynthesizeClientContextDecodes(t *testing.T) {
	cfg := testConfig()
	src, err := Synthesize([]string{"fnA"}, cfg)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	encoded := extractSingleQuoted(t, src, "const clientContext = ")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode client context: %v", err)
	}
	want := fmt.Sprintf(`{"custom":%s}`, cfg.SourcePayload)
	if string(decoded) != want {
		t.Fatalf("client context = %q, want %q", decoded, want)
	}
}

func TestSynthesizeInvocationParameters(t *testing.T) {
	src, err := Synthesize([]string{"fnA"}, testConfig())
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	for _, fragment := range []string{
		"InvocationType: 'RequestResponse'",
		"LogType: 'None'",
		"process.env.SERVERLESS_ALIAS || '$LATEST'",
		"export async function warmUp(",
		"Promise.all(",
	} {
		if !strings.Contains(src, fragment) {
			t.Fatalf("missing %q in synthesized source:\n%s", fragment, src)
		}
	}
}

func TestSynthesizeTargetsBundledRuntimeSDK(t *testing.T) {
	src, err := Synthesize([]string{"fnA"}, testConfig())
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	// nodejs18.x ships only AWS SDK v3, and the package rules exclude
	// node_modules, so the import must resolve against the bundled SDK.
	if !strings.Contains(src, "import { Lambda } from '@aws-sdk/client-lambda'") {
		t.Fatalf("missing v3 SDK import:\n%s", src)
	}
	if strings.Contains(src, ".promise()") {
		t.Fatalf("v2 call shape in synthesized source:\n%s", src)
	}
	if !strings.Contains(src, "Payload: Buffer.from(payload)") {
		t.Fatalf("payload must be passed as bytes:\n%s", src)
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	cfg := testConfig()
	first, err := Synthesize([]string{"fnA", "fnB"}, cfg)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	second, err := Synthesize([]string{"fnA", "fnB"}, cfg)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if first != second {
		t.Fatalf("synthesis must be byte-identical across runs")
	}
}

func TestSynthesizeEmbedsPayloadLiteral(t *testing.T) {
	cfg := testConfig()
	src, err := Synthesize([]string{"fnA"}, cfg)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if !strings.Contains(src, `const payload = "{\"source\":\"serverless-plugin-warmup\"}"`) {
		t.Fatalf("payload literal missing:\n%s", src)
	}
}

func TestRenderFunctionFragment(t *testing.T) {
	spec := &service.Spec{Service: "svc"}
	cfg := config.Resolve(config.ServiceIdentity{Service: "svc", Stage: "dev"}, map[string]any{
		"warmup": map[string]any{
			"schedule": []any{"rate(5 minutes)", "rate(30 minutes)"},
		},
	})
	fn := service.Register(spec, cfg)

	out, err := RenderFunctionFragment(fn)
	if err != nil {
		t.Fatalf("render fragment: %v", err)
	}

	if !strings.Contains(out, "warmUpPlugin:") {
		t.Fatalf("fragment missing registration key:\n%s", out)
	}
	if n := strings.Count(out, "schedule:"); n != 2 {
		t.Fatalf("fragment has %d schedule entries, want 2:\n%s", n, out)
	}
	if !strings.Contains(out, "handler: _warmup/index.warmUp") {
		t.Fatalf("fragment missing handler:\n%s", out)
	}
	if strings.Contains(out, "role:") || strings.Contains(out, "tags:") {
		t.Fatalf("absent role/tags must be omitted:\n%s", out)
	}
}

// extractSingleQuoted pulls the first single-quoted literal after the marker.
func extractSingleQuoted(t *testing.T, src, marker string) string {
	t.Helper()
	idx := strings.Index(src, marker)
	if idx < 0 {
		t.Fatalf("marker %q not found", marker)
	}
	rest := src[idx+len(marker):]
	open := strings.Index(rest, "'")
	if open < 0 {
		t.Fatalf("no opening quote after %q", marker)
	}
	rest = rest[open+1:]
	end := strings.Index(rest, "'")
	if end < 0 {
		t.Fatalf("no closing quote after %q", marker)
	}
	return rest[:end]
}

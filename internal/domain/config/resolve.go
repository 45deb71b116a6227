// Where: warmup/internal/domain/config/resolve.go
// What: Layered resolution of the custom warmup block over defaults.
// Why: Malformed user values degrade to defaults, never to errors.
package config

import (
	"encoding/json"

	"github.com/poruru/serverless-warmup/internal/domain/target"
	"github.com/poruru/serverless-warmup/internal/domain/value"
)

// Resolve merges the custom block's "warmup" entry over the hard-coded
// defaults for the given identity. Every field is accepted only in its
// expected shape; anything else keeps the default. Resolving twice with the
// same inputs yields an identical record.
func Resolve(id ServiceIdentity, custom map[string]any) WarmerConfig {
	cfg := Defaults(id)

	block := value.AsMap(custom["warmup"])
	if block == nil {
		return cfg
	}

	if v, ok := value.AsString(block["folderName"]); ok && v != "" {
		cfg.FolderName = v
	}
	if v, ok := value.AsInt(block["memorySize"]); ok {
		cfg.MemorySize = v
	}
	if v, ok := value.AsString(block["name"]); ok && v != "" {
		cfg.Name = v
	}
	if v, ok := value.AsInt(block["timeout"]); ok {
		cfg.Timeout = v
	}

	// A scalar schedule is wrapped into a one-element sequence.
	if v, ok := value.AsString(block["schedule"]); ok {
		cfg.Schedule = []string{v}
	} else if vs, ok := value.AsStringSlice(block["schedule"]); ok && len(vs) > 0 {
		cfg.Schedule = vs
	}

	if raw, defined := block["source"]; defined {
		sourceRaw, _ := value.AsBool(block["sourceRaw"])
		if payload, ok := serializeSource(raw, sourceRaw); ok {
			cfg.SourcePayload = payload
		}
	}

	if v, ok := value.AsBool(block["prewarm"]); ok {
		cfg.Prewarm = v
	}
	if policy, ok := target.ParsePolicy(block["default"]); ok {
		cfg.DefaultPolicy = policy
	}
	if v, ok := value.AsString(block["role"]); ok && v != "" {
		cfg.Role = v
	}
	if m, ok := value.AsStringMap(block["tags"]); ok && len(m) > 0 {
		cfg.Tags = m
	}

	return cfg
}

// serializeSource turns the configured source into the payload string.
// The sourceRaw flag is honored here and only here, so every downstream
// consumer of the payload sees the same serialization decision. Raw mode
// requires a string; any other raw value falls through to JSON encoding.
func serializeSource(raw any, sourceRaw bool) (string, bool) {
	if sourceRaw {
		if s, ok := raw.(string); ok {
			return s, true
		}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Where: warmup/internal/domain/config/config.go
// What: Effective warmer configuration record.
// Why: One normalized view of defaults, custom block, and stage identity.
package config

import (
	"fmt"

	"github.com/poruru/serverless-warmup/internal/domain/target"
	"github.com/poruru/serverless-warmup/internal/meta"
)

// ServiceIdentity carries the already-resolved service coordinates.
// Stage and region fallback resolution happens in the host config layer
// before the resolver runs.
type ServiceIdentity struct {
	Service string
	Stage   string
	Region  string
}

// WarmerConfig is the resolved warmer configuration. It is rebuilt from
// scratch on every resolution; nothing mutates it afterwards.
type WarmerConfig struct {
	FolderName    string
	MemorySize    int
	Name          string
	Schedule      []string
	Timeout       int
	SourcePayload string
	Prewarm       bool
	DefaultPolicy target.Policy
	Role          string
	Tags          map[string]string
}

// DefaultSourcePayload is the payload sent when the user configures none.
const DefaultSourcePayload = `{"source":"serverless-plugin-warmup"}`

// Defaults returns the hard-coded configuration for a service identity.
func Defaults(id ServiceIdentity) WarmerConfig {
	return WarmerConfig{
		FolderName:    meta.DefaultFolderName,
		MemorySize:    128,
		Name:          fmt.Sprintf("%s-%s-%s", id.Service, id.Stage, meta.WarmerNameSuffix),
		Schedule:      []string{"rate(5 minutes)"},
		Timeout:       10,
		SourcePayload: DefaultSourcePayload,
		Prewarm:       false,
		DefaultPolicy: target.NoStages(),
	}
}

// Where: warmup/internal/meta/meta.go
// What: Plugin-local identity and layout constants.
// Why: Keep naming decisions in one place instead of scattered literals.
package meta

const (
	// Project Identity
	AppName   = "warmup"
	Slug      = "warmup"
	EnvPrefix = "WARMUP"

	// Registration
	RegistrationKey   = "warmUpPlugin"
	WarmerDescription = "Serverless WarmUp Plugin"
	WarmerRuntime     = "nodejs18.x"
	WarmerNameSuffix  = "warmup-plugin"
	DefaultFolderName = "_warmup"
	ArtifactFilename  = "index.ts"
	FragmentFilename  = "warmup-function.yml"
	HandlerExportName = "warmUp"

	// Invocation
	AliasEnvVar     = "SERVERLESS_ALIAS"
	LatestQualifier = "$LATEST"

	// Host fallbacks
	DefaultStage  = "dev"
	DefaultRegion = "us-east-1"
)

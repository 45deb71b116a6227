// Where: warmup/internal/infra/fileops/file_ops.go
// What: Filesystem helpers for writing generated artifacts.
// Why: Keep write semantics (parent creation, permissions) in one place.
package fileops

import (
	"os"
	"path/filepath"
)

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile writes content to path, creating parent directories as needed.
// An existing file is overwritten; generated artifacts are never merged
// with a previous version.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

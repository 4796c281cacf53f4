package models

import (
	"os"
	"path/filepath"
)

// InitializeTestDb points the models at a fresh sqlite db in a temp dir.
func InitializeTestDb() error {
	dir, err := os.MkdirTemp("", "coastal-alert-test")
	if err != nil {
		return err
	}

	return AutoMigrate(SQLITE_SCHEME+"/"+filepath.Join(dir, "test.db"), "")
}

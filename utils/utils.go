package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

func FileExist(filePath string) bool {
	var err error

	if _, err = os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	if err != nil {
		log.Panic(err)
	}

	return true
}

func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	return nil
}

// NilIfEmpty trims value and returns nil when nothing is left,
// so optional unique columns are stored as NULL rather than "".
func NilIfEmpty(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ValueOrEmpty dereferences value, treating nil as "".
func ValueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// WriteFileIfNotExist writes content to filePath, creating parent dirs,
// unless the file is already there.
func WriteFileIfNotExist(filePath string, content []byte) error {
	if FileExist(filePath) {
		return nil
	}

	if err := CreateDirIfNotExist(filepath.Dir(filePath)); err != nil {
		return err
	}

	return os.WriteFile(filePath, content, 0600)
}

// Package testutils holds helpers shared by integration tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/psalmos/web/internal/config"
	"github.com/psalmos/web/internal/logging"
)

// ConfigForTests loads the .env.test file from the project root and returns
// a valid config.Provider. Integration tests that need a live database go
// through this.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}

	for key, value := range env {
		t.Setenv(key, value)
	}

	logging.New()

	return config.New()
}

package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwash/inkwash/internal/errors"
)

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDiscoverScriptsDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvScriptsDir, dir)

	got, err := DiscoverScriptsDir()
	if err != nil {
		t.Fatalf("DiscoverScriptsDir() error: %v", err)
	}
	if got != dir {
		t.Errorf("DiscoverScriptsDir() = %s, want %s", got, dir)
	}
}

func TestDiscoverScriptsDirIgnoresBogusEnv(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "does-not-exist")
	t.Setenv(EnvScriptsDir, bogus)

	work := t.TempDir()
	want := filepath.Join(work, "scripts")
	if err := os.Mkdir(want, 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, work)

	got, err := DiscoverScriptsDir()
	if err != nil {
		t.Fatalf("DiscoverScriptsDir() error: %v", err)
	}
	if got == bogus {
		t.Errorf("a missing env dir must not be used")
	}
	if got != want {
		t.Errorf("DiscoverScriptsDir() = %s, want cwd fallback %s", got, want)
	}
}

func TestDiscoverScriptsDirNotFound(t *testing.T) {
	t.Setenv(EnvScriptsDir, filepath.Join(t.TempDir(), "does-not-exist"))
	chdir(t, t.TempDir())

	_, err := DiscoverScriptsDir()
	if err == nil {
		t.Fatal("DiscoverScriptsDir() should fail when no candidate exists")
	}
	if !errors.Is(err, errors.ErrTypeConfig) {
		t.Errorf("error type = %v, want config", errors.GetType(err))
	}
}

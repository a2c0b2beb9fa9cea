package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPath_Default(t *testing.T) {
	t.Setenv(EnvPath, "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error = %v", err)
	}

	want := filepath.Join(home, ".tern.conf")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/etc/tern/tern.conf")

	if got := Path(); got != "/etc/tern/tern.conf" {
		t.Errorf("Path() = %q, want /etc/tern/tern.conf", got)
	}
}

func TestPath_EnvOverrideExpandsHome(t *testing.T) {
	t.Setenv(EnvPath, "~/custom.conf")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error = %v", err)
	}

	want := filepath.Join(home, "custom.conf")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

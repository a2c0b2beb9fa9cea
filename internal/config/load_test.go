package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xdg/tern/internal/clog"
)

func init() {
	clog.Discard()
}

// withConfigFile writes content to a temp file and points TERN_CONFIG
// at it for the duration of the test.
func withConfigFile(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tern.conf")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	t.Setenv(EnvPath, path)
}

// clearEnvOverrides unsets every TERN_* override so values from other
// test environments cannot leak in.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvBedrockModelID, EnvBedrockRegion, EnvBedrockTimeout,
		EnvOutputChars, EnvErrorChars, EnvMaxLines, EnvDebug,
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Missing(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "does-not-exist.conf"))

	cfg := Load()

	if cfg.Bedrock.Timeout != DefaultTimeout {
		t.Errorf("Bedrock.Timeout = %d, want %d", cfg.Bedrock.Timeout, DefaultTimeout)
	}
	if cfg.Limits.MaxLines != DefaultMaxLines {
		t.Errorf("Limits.MaxLines = %d, want %d", cfg.Limits.MaxLines, DefaultMaxLines)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnvOverrides(t)
	withConfigFile(t, `
bedrock:
  model_id: us.anthropic.claude-sonnet-4-20250514-v1:0
  region: us-east-2
  timeout: 90
limits:
  max_lines: 500
debug: true
`)

	cfg := Load()

	if cfg.Bedrock.ModelID != "us.anthropic.claude-sonnet-4-20250514-v1:0" {
		t.Errorf("Bedrock.ModelID = %q", cfg.Bedrock.ModelID)
	}
	if cfg.Bedrock.Region != "us-east-2" {
		t.Errorf("Bedrock.Region = %q, want us-east-2", cfg.Bedrock.Region)
	}
	if cfg.Bedrock.Timeout != 90 {
		t.Errorf("Bedrock.Timeout = %d, want 90", cfg.Bedrock.Timeout)
	}
	if cfg.Limits.MaxLines != 500 {
		t.Errorf("Limits.MaxLines = %d, want 500", cfg.Limits.MaxLines)
	}
	// Fields the file does not mention keep their defaults.
	if cfg.Limits.OutputChars != DefaultOutputChars {
		t.Errorf("Limits.OutputChars = %d, want %d", cfg.Limits.OutputChars, DefaultOutputChars)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoad_JSONFile(t *testing.T) {
	clearEnvOverrides(t)
	withConfigFile(t, `{"bedrock": {"model_id": "test-model", "region": "us-east-1"}}`)

	cfg := Load()

	if cfg.Bedrock.ModelID != "test-model" {
		t.Errorf("Bedrock.ModelID = %q, want test-model", cfg.Bedrock.ModelID)
	}
	if cfg.Bedrock.Region != "us-east-1" {
		t.Errorf("Bedrock.Region = %q, want us-east-1", cfg.Bedrock.Region)
	}
}

func TestLoad_CorruptFileFallsBackToDefaults(t *testing.T) {
	clearEnvOverrides(t)
	withConfigFile(t, "{{{not yaml")

	cfg := Load()

	if cfg.Bedrock.Timeout != DefaultTimeout {
		t.Errorf("Bedrock.Timeout = %d, want default %d", cfg.Bedrock.Timeout, DefaultTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnvOverrides(t)
	withConfigFile(t, `
bedrock:
  model_id: from-file
  region: us-east-1
  timeout: 60
`)
	t.Setenv(EnvBedrockModelID, "from-env")
	t.Setenv(EnvBedrockTimeout, "120")
	t.Setenv(EnvMaxLines, "250")
	t.Setenv(EnvDebug, "true")

	cfg := Load()

	if cfg.Bedrock.ModelID != "from-env" {
		t.Errorf("Bedrock.ModelID = %q, want from-env", cfg.Bedrock.ModelID)
	}
	if cfg.Bedrock.Region != "us-east-1" {
		t.Errorf("Bedrock.Region = %q, want us-east-1 (file value)", cfg.Bedrock.Region)
	}
	if cfg.Bedrock.Timeout != 120 {
		t.Errorf("Bedrock.Timeout = %d, want 120", cfg.Bedrock.Timeout)
	}
	if cfg.Limits.MaxLines != 250 {
		t.Errorf("Limits.MaxLines = %d, want 250", cfg.Limits.MaxLines)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoad_UnparseableEnvIgnored(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "none.conf"))
	t.Setenv(EnvBedrockTimeout, "not-a-number")
	t.Setenv(EnvDebug, "not-a-bool")

	cfg := Load()

	if cfg.Bedrock.Timeout != DefaultTimeout {
		t.Errorf("Bedrock.Timeout = %d, want default %d", cfg.Bedrock.Timeout, DefaultTimeout)
	}
	if cfg.Debug {
		t.Error("Debug should remain false for unparseable value")
	}
}

func TestLoad_TimeoutSanitized(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    int
	}{
		{"negative becomes absolute", "-90", 90},
		{"excessive clamps to ceiling", "7200", 3600},
		{"in-range passes through", "300", 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvOverrides(t)
			t.Setenv(EnvPath, filepath.Join(t.TempDir(), "none.conf"))
			t.Setenv(EnvBedrockTimeout, tt.timeout)

			cfg := Load()
			if cfg.Bedrock.Timeout != tt.want {
				t.Errorf("Bedrock.Timeout = %d, want %d", cfg.Bedrock.Timeout, tt.want)
			}
		})
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/xdg/tern/internal/clog"
)

// Environment variables recognized as config overrides. Env values win
// over the config file.
const (
	EnvBedrockModelID = "TERN_BEDROCK_MODEL_ID"
	EnvBedrockRegion  = "TERN_BEDROCK_REGION"
	EnvBedrockTimeout = "TERN_BEDROCK_TIMEOUT"
	EnvOutputChars    = "TERN_LIMITS_OUTPUT_CHARS"
	EnvErrorChars     = "TERN_LIMITS_ERROR_CHARS"
	EnvMaxLines       = "TERN_LIMITS_MAX_LINES"
	EnvDebug          = "TERN_DEBUG"
)

// applyEnv overlays TERN_* environment variables onto cfg.
// Unparseable numeric or boolean values are logged and skipped.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBedrockModelID); v != "" {
		cfg.Bedrock.ModelID = v
	}
	if v := os.Getenv(EnvBedrockRegion); v != "" {
		cfg.Bedrock.Region = v
	}
	setIntFromEnv(EnvBedrockTimeout, &cfg.Bedrock.Timeout)
	setIntFromEnv(EnvOutputChars, &cfg.Limits.OutputChars)
	setIntFromEnv(EnvErrorChars, &cfg.Limits.ErrorChars)
	setIntFromEnv(EnvMaxLines, &cfg.Limits.MaxLines)
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			clog.Warn("config: ignoring %s=%q: not a boolean", EnvDebug, v)
		} else {
			cfg.Debug = b
		}
	}
}

func setIntFromEnv(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		clog.Warn("config: ignoring %s=%q: not an integer", name, v)
		return
	}
	*dst = n
}

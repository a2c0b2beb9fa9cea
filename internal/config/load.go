package config

import (
	"errors"
	"os"

	"github.com/xdg/tern/internal/clog"
)

// Load resolves the effective configuration: defaults, then the config
// file if present, then TERN_* environment variables, then range
// sanitization. A missing config file is not an error; an unreadable
// or malformed one is logged and otherwise ignored, because a broken
// config must never stop the wrapped command from running.
func Load() *Config {
	path := Path()
	clog.Debug("config: loading from %s", path)

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed, perr := Parse(data)
		if perr != nil {
			clog.Warn("config: failed to load %s: %v", path, perr)
		} else {
			cfg = parsed
		}
	case errors.Is(err, os.ErrNotExist):
		clog.Debug("config: file not found, using defaults")
	default:
		clog.Warn("config: failed to read %s: %v", path, err)
	}

	applyEnv(cfg)
	sanitize(cfg)
	return cfg
}

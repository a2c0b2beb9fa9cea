package config

import (
	"os"

	"github.com/xdg/tern/internal/pathutil"
)

// DefaultPath is the default config file location.
const DefaultPath = "~/.tern.conf"

// EnvPath is the environment variable that overrides the config file
// location.
const EnvPath = "TERN_CONFIG"

// Path returns the config file path. The TERN_CONFIG environment
// variable takes precedence over the default ~/.tern.conf; either form
// may use a leading ~.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return pathutil.ExpandHome(p)
	}
	return pathutil.ExpandHome(DefaultPath)
}

// Package config provides tern's configuration. Settings come from,
// in increasing precedence: built-in defaults, the config file
// (~/.tern.conf, YAML or JSON), and TERN_* environment variables.
package config

// Config is the top-level tern configuration. It is constructed once
// at startup and treated as immutable afterwards; components receive
// it explicitly rather than through ambient lookup.
type Config struct {
	Bedrock BedrockConfig `yaml:"bedrock,omitempty"`
	Limits  LimitsConfig  `yaml:"limits,omitempty"`
	Debug   bool          `yaml:"debug,omitempty"`
}

// BedrockConfig contains AWS Bedrock settings for the analyzer.
type BedrockConfig struct {
	ModelID string `yaml:"model_id,omitempty"`
	Region  string `yaml:"region,omitempty"`
	// Timeout is the model invocation timeout in seconds.
	Timeout int `yaml:"timeout,omitempty"`
}

// LimitsConfig bounds how much of the transcript is kept and sent.
type LimitsConfig struct {
	// OutputChars caps the stdout text included in the analysis prompt.
	OutputChars int `yaml:"output_chars,omitempty"`
	// ErrorChars caps the stderr text included in the analysis prompt.
	ErrorChars int `yaml:"error_chars,omitempty"`
	// MaxLines caps each stream's in-memory capture.
	MaxLines int `yaml:"max_lines,omitempty"`
}

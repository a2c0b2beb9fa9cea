package config

// Default limit values. MaxLines matches the per-stream capture
// default; the char limits bound the analysis prompt.
const (
	DefaultTimeout     = 180
	DefaultOutputChars = 15000
	DefaultErrorChars  = 5000
	DefaultMaxLines    = 10000
)

// DefaultConfig returns a Config with all defaults populated. There is
// no default model or region: analysis requires the user to configure
// both, and their absence surfaces when analysis is attempted.
func DefaultConfig() *Config {
	return &Config{
		Bedrock: BedrockConfig{
			Timeout: DefaultTimeout,
		},
		Limits: LimitsConfig{
			OutputChars: DefaultOutputChars,
			ErrorChars:  DefaultErrorChars,
			MaxLines:    DefaultMaxLines,
		},
	}
}

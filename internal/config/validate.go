package config

// maxTimeout is the ceiling for the Bedrock invocation timeout, in
// seconds.
const maxTimeout = 3600

// sanitize normalizes values that are out of range rather than
// rejecting the config: a broken limit must never prevent the wrapped
// command from running.
func sanitize(cfg *Config) {
	if cfg.Bedrock.Timeout < 0 {
		cfg.Bedrock.Timeout = -cfg.Bedrock.Timeout
	}
	if cfg.Bedrock.Timeout > maxTimeout {
		cfg.Bedrock.Timeout = maxTimeout
	}
	if cfg.Limits.OutputChars <= 0 {
		cfg.Limits.OutputChars = DefaultOutputChars
	}
	if cfg.Limits.ErrorChars <= 0 {
		cfg.Limits.ErrorChars = DefaultErrorChars
	}
	if cfg.Limits.MaxLines <= 0 {
		cfg.Limits.MaxLines = DefaultMaxLines
	}
}

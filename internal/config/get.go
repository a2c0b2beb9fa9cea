package config

// Get returns the value at a dotted key, or def if the key is unknown
// or the value is unset. Known keys mirror the config file layout:
// bedrock.model_id, bedrock.region, bedrock.timeout,
// limits.output_chars, limits.error_chars, limits.max_lines, debug.
func (c *Config) Get(key string, def any) any {
	switch key {
	case "bedrock.model_id":
		return stringOr(c.Bedrock.ModelID, def)
	case "bedrock.region":
		return stringOr(c.Bedrock.Region, def)
	case "bedrock.timeout":
		return intOr(c.Bedrock.Timeout, def)
	case "limits.output_chars":
		return intOr(c.Limits.OutputChars, def)
	case "limits.error_chars":
		return intOr(c.Limits.ErrorChars, def)
	case "limits.max_lines":
		return intOr(c.Limits.MaxLines, def)
	case "debug":
		return c.Debug
	default:
		return def
	}
}

func stringOr(v string, def any) any {
	if v == "" {
		return def
	}
	return v
}

func intOr(v int, def any) any {
	if v == 0 {
		return def
	}
	return v
}

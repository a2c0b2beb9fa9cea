package analyze

import (
	"encoding/json"
	"fmt"
)

// extractText pulls the commentary text out of a model response.
// Different model families use different response shapes; the known
// ones are tried in order, and an unrecognized but valid JSON body is
// returned verbatim as a last resort.
func extractText(data []byte) (string, error) {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	// Anthropic messages API: {"content": [{"type": "text", "text": ...}]}
	if content, ok := body["content"]; ok {
		switch c := content.(type) {
		case []any:
			if len(c) > 0 {
				if block, ok := c[0].(map[string]any); ok {
					if text, ok := block["text"].(string); ok {
						return text, nil
					}
				}
			}
			return "", nil
		case string:
			return c, nil
		}
	}

	// Legacy Anthropic completions.
	if completion, ok := body["completion"].(string); ok {
		return completion, nil
	}

	// Some model families wrap completions in a list.
	if completions, ok := body["completions"].([]any); ok && len(completions) > 0 {
		if block, ok := completions[0].(map[string]any); ok {
			if text, ok := block["text"].(string); ok {
				return text, nil
			}
		}
	}

	for _, key := range []string{"text", "output", "generated_text"} {
		if text, ok := body[key].(string); ok {
			return text, nil
		}
	}

	return string(data), nil
}

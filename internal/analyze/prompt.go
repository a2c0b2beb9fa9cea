package analyze

import "fmt"

// promptHeader is the instruction prepended to every analysis prompt.
const promptHeader = "Analyze this command output. Provide helpful commentary about " +
	"what happened, explain any errors, and suggest improvements or best " +
	"practices where relevant. Be concise and practical."

// buildPrompt assembles the model prompt from a transcript, truncating
// stdout and stderr to their configured character limits.
func buildPrompt(req Request, outputLimit, errorLimit int) string {
	output := truncate(req.Output, outputLimit)
	if output == "" {
		output = "(no output)"
	}
	errs := truncate(req.Errors, errorLimit)
	if errs == "" {
		errs = "(no errors)"
	}

	return fmt.Sprintf("%s\n\nCommand: `%s`\nReturn Code: %d\n\nOutput:\n```\n%s\n```\n\nErrors:\n```\n%s\n```",
		promptHeader, req.Command, req.ExitCode, output, errs)
}

// truncate caps s at limit bytes. A limit of zero or less means no cap.
func truncate(s string, limit int) string {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

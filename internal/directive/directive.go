// Package directive handles tern's in-band pseudo-flags. These are
// interpreted by tern itself and stripped before the remaining tokens
// are handed to the shell.
package directive

// SkipAnalysis is the flag that disables AI analysis for one run.
const SkipAnalysis = "--no-ai"

// deprecated holds flags from earlier releases that are accepted and
// silently discarded.
var deprecated = map[string]bool{
	"--ai-verbose": true,
	"--ai-summary": true,
}

// Extract removes tern's pseudo-flags from args, preserving the order
// of the remaining tokens. It returns the cleaned argument list and
// whether the skip-analysis flag was present. The input slice is not
// modified.
func Extract(args []string) (clean []string, skip bool) {
	clean = make([]string, 0, len(args))
	for _, arg := range args {
		if arg == SkipAnalysis {
			skip = true
			continue
		}
		if deprecated[arg] {
			continue
		}
		clean = append(clean, arg)
	}
	return clean, skip
}

// Package analyze turns a command transcript into AI commentary. The
// production implementation calls AWS Bedrock; the Analyzer interface
// exists so the orchestrator can be tested without network access.
package analyze

import "context"

// Request is one transcript submitted for analysis.
type Request struct {
	// Command is the literal command line handed to the shell.
	Command string
	// Output is the captured stdout, lines joined with newlines.
	Output string
	// Errors is the captured stderr, lines joined with newlines.
	Errors string
	// ExitCode is the child's exit status.
	ExitCode int
}

// Analyzer produces commentary for a transcript. An empty string with
// a nil error means the analyzer had nothing to say. Failures here are
// never run failures: the caller reports them and moves on.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (string, error)
}

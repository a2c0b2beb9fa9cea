// Package gate decides, before the child is spawned, whether the run's
// transcript will be submitted for AI analysis. The decision gates only
// the analysis call: relaying and capturing always happen.
package gate

// Reason explains why analysis is enabled or disabled for a run.
type Reason int

const (
	// InteractiveOptedIn: stdout is a terminal and the user did not opt
	// out; analysis runs.
	InteractiveOptedIn Reason = iota
	// ExplicitOptOut: the skip-analysis directive was given.
	ExplicitOptOut
	// NonInteractiveStdout: tern's own stdout is piped or redirected,
	// so commentary would corrupt the downstream stream.
	NonInteractiveStdout
)

// String returns a short identifier for the reason.
func (r Reason) String() string {
	switch r {
	case InteractiveOptedIn:
		return "interactive"
	case ExplicitOptOut:
		return "opt_out"
	case NonInteractiveStdout:
		return "non_interactive_stdout"
	default:
		return "unknown"
	}
}

// Decision is the pre-spawn analysis verdict.
type Decision struct {
	Enabled bool
	Reason  Reason
}

// Decide computes the analysis decision. Non-interactive stdout always
// wins, even over an explicit opt-out: the redirect diagnostic is about
// where the output went, not about the user's choice.
func Decide(stdoutIsTerminal, skip bool) Decision {
	if !stdoutIsTerminal {
		return Decision{Enabled: false, Reason: NonInteractiveStdout}
	}
	if skip {
		return Decision{Enabled: false, Reason: ExplicitOptOut}
	}
	return Decision{Enabled: true, Reason: InteractiveOptedIn}
}

// Package wrap is tern's orchestrator. It validates the command line,
// strips tern's own directives, decides whether analysis will run,
// supervises the child, and finally hands the transcript to the
// analyzer. The returned value is always the child's exit code, or 1
// for a usage error or spawn failure; analysis problems never change
// it.
package wrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/xdg/tern/internal/analyze"
	"github.com/xdg/tern/internal/clog"
	"github.com/xdg/tern/internal/config"
	"github.com/xdg/tern/internal/directive"
	"github.com/xdg/tern/internal/gate"
	"github.com/xdg/tern/internal/supervise"
	"github.com/xdg/tern/internal/term"
)

// hintMaxLen bounds the pipeline-redirect hint; longer literal
// commands are shown truncated.
const (
	hintMaxLen     = 60
	hintTruncateAt = 40
)

// Wrapper composes the run pipeline. All collaborators are injected so
// tests can substitute fakes.
type Wrapper struct {
	Config     *config.Config
	Analyzer   analyze.Analyzer
	Supervisor *supervise.Supervisor

	// StdoutIsTerminal reports whether the wrapper's own stdout is
	// interactive. Defaults to term.StdoutIsTerminal.
	StdoutIsTerminal func() bool
}

// New returns a Wrapper with production collaborators built from cfg.
func New(cfg *config.Config) *Wrapper {
	return &Wrapper{
		Config:   cfg,
		Analyzer: analyze.NewBedrock(cfg),
		Supervisor: &supervise.Supervisor{
			MaxLines:   cfg.Limits.MaxLines,
			Console:    term.Stdout(),
			ConsoleErr: term.Stderr(),
		},
		StdoutIsTerminal: term.StdoutIsTerminal,
	}
}

// Run executes the wrapped command line and returns the exit code for
// the process. An empty args renders usage and returns 1 without
// spawning anything.
func (w *Wrapper) Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	clean, skip := directive.Extract(args)
	literal := strings.Join(clean, " ")

	decision := gate.Decide(w.stdoutIsTerminal(), skip)
	clog.Debug("wrap: analysis %v (%s) for %q", decision.Enabled, decision.Reason, literal)
	if decision.Reason == gate.NonInteractiveStdout {
		warnPiped(literal)
	}

	res, err := w.Supervisor.Run(literal)
	if err != nil {
		term.Error("running command: %v", err)
		return res.ExitCode
	}

	if decision.Enabled && (res.Stdout.Len() > 0 || res.Stderr.Len() > 0) {
		w.analyzeAndDisplay(literal, res)
	}

	return res.ExitCode
}

// analyzeAndDisplay submits the transcript and renders any commentary.
// Failures are reported to stderr and swallowed.
func (w *Wrapper) analyzeAndDisplay(literal string, res *supervise.Result) {
	commentary, err := w.Analyzer.Analyze(context.Background(), analyze.Request{
		Command:  literal,
		Output:   res.Stdout.Join("\n"),
		Errors:   res.Stderr.Join("\n"),
		ExitCode: res.ExitCode,
	})
	if err != nil {
		term.Error("AI analysis failed: %v", err)
		if w.Config.Debug {
			clog.Error("analysis failure detail: %+v", err)
		}
		return
	}
	if commentary != "" {
		term.Banner("TERN AI Analysis", commentary)
	}
}

// warnPiped tells the operator that commentary was suppressed because
// stdout is not a terminal, and how to analyze a whole pipeline instead.
func warnPiped(literal string) {
	hint := fmt.Sprintf("tern '%s | ...'", literal)
	if len(hint) > hintMaxLen {
		hint = fmt.Sprintf("tern '%.*s... | ...'", hintTruncateAt, literal)
	}
	term.Notice("")
	term.Warn("output is being piped; AI analysis disabled")
	term.Notice("   To analyze the full pipeline, use: %s", hint)
	term.Notice("")
}

func (w *Wrapper) stdoutIsTerminal() bool {
	if w.StdoutIsTerminal != nil {
		return w.StdoutIsTerminal()
	}
	return term.StdoutIsTerminal()
}

// printUsage renders the usage text to stdout.
func printUsage() {
	term.Println("Usage: tern <command> [args...]")
	term.Println("Examples:")
	term.Println("  tern terraform plan")
	term.Println("  tern terraform apply --auto-approve")
	term.Println("  tern ls -la")
	term.Println("  tern echo 'hello world'")
	term.Println("")
	term.Println("TERN flags:")
	term.Println("  --no-ai       Skip AI analysis for this command")
}

// Package cmd implements the CLI surface for tern.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/tern/internal/clog"
	"github.com/xdg/tern/internal/config"
	"github.com/xdg/tern/internal/term"
	"github.com/xdg/tern/internal/version"
	"github.com/xdg/tern/internal/wrap"
)

// rootCmd is tern's single command: everything after the program name
// is the wrapped command line. Flag parsing is disabled so the child's
// flags pass through verbatim; tern's own pseudo-flags are recognized
// in-band by the directive filter.
var rootCmd = &cobra.Command{
	Use:   "tern <command> [args...]",
	Short: "Transparent command wrapper with AI output analysis",
	Long: `Tern runs any shell command, relays its output unchanged, and then has an
AI model comment on the transcript: what happened, what the errors mean,
and what to try next.

The wrapped command's exit code is always passed through unchanged. AI
analysis is skipped when tern's stdout is piped, or with --no-ai.`,
	Version:            version.Version,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runWrap,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

func runWrap(cmd *cobra.Command, args []string) error {
	// With flag parsing disabled, help and version requests arrive as
	// ordinary arguments and are handled here before anything runs.
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			term.Printf("tern version %s\n", version.Version)
			return nil
		}
	}

	cfg := config.Load()
	if err := clog.Configure(clog.DefaultLogPath(), cfg.Debug); err != nil {
		// Logging is best-effort; a bad log path must not block the run.
		clog.Warn("logging setup failed: %v", err)
	}
	defer func() { _ = clog.Close() }()

	if code := wrap.New(cfg).Run(args); code != 0 {
		return &ExitCodeError{Code: code}
	}
	return nil
}

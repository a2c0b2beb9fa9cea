// Package supervise spawns the wrapped command and drains both of its
// output streams concurrently. Both pipes must be read in parallel: a
// full, unread pipe buffer would stall the child.
package supervise

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"

	"github.com/xdg/tern/internal/capture"
	"github.com/xdg/tern/internal/clog"
	"github.com/xdg/tern/internal/relay"
)

// DefaultShell is used when no shell is configured.
const DefaultShell = "/bin/sh"

// Result holds the outcome of a supervised run. Both captures are
// complete and stable by the time Run returns.
type Result struct {
	// ExitCode is the child's exit status. Signal termination is
	// reported as the negated signal number. A spawn failure yields a
	// synthetic 1.
	ExitCode int
	Stdout   *capture.Buffer
	Stderr   *capture.Buffer
}

// Supervisor runs one shell command with both output streams relayed to
// the console and captured.
type Supervisor struct {
	// Shell is the shell binary used to interpret the literal command.
	// Empty means DefaultShell.
	Shell string

	// MaxLines caps each stream's capture; zero or less means
	// capture.DefaultCapacity.
	MaxLines int

	// Console and ConsoleErr receive the child's stdout and stderr
	// lines respectively.
	Console    io.Writer
	ConsoleErr io.Writer
}

// Run executes literal through the shell and blocks until the child has
// exited and both relays have reached end-of-stream. The child's stdin
// is left unconnected so it can never block waiting for interactive
// input. If the spawn itself fails, the returned Result carries a
// synthetic exit code 1 and the error describes the failure; if the
// child started, the returned error is nil and ExitCode is the child's
// true status.
func (s *Supervisor) Run(literal string) (*Result, error) {
	shell := s.Shell
	if shell == "" {
		shell = DefaultShell
	}

	res := &Result{
		Stdout: capture.NewBuffer(s.MaxLines),
		Stderr: capture.NewBuffer(s.MaxLines),
	}

	cmd := exec.Command(shell, "-c", literal)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		res.ExitCode = 1
		return res, fmt.Errorf("open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		res.ExitCode = 1
		return res, fmt.Errorf("open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		res.ExitCode = 1
		return res, fmt.Errorf("start command: %w", err)
	}

	console, consoleErr := s.Console, s.ConsoleErr
	if console == nil {
		console = io.Discard
	}
	if consoleErr == nil {
		consoleErr = io.Discard
	}

	relays := []*relay.Relay{
		{Source: stdout, Console: console, Capture: res.Stdout, Name: "stdout"},
		{Source: stderr, Console: consoleErr, Capture: res.Stderr, Name: "stderr"},
	}

	var wg sync.WaitGroup
	for _, r := range relays {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Run()
		}()
	}

	// Both relays must reach end-of-stream before Wait reaps the child,
	// otherwise Wait would close the pipes under the readers.
	wg.Wait()

	res.ExitCode = exitCode(cmd.Wait())
	clog.Debug("supervise: %q exited with %d (%d stdout, %d stderr lines)",
		literal, res.ExitCode, res.Stdout.Len(), res.Stderr.Len())
	return res, nil
}

// exitCode converts the error from cmd.Wait into the child's exit
// status. A child killed by signal N reports -N.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return -int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	// Wait failed for a reason other than the child's own status.
	clog.Warn("supervise: wait failed: %v", err)
	return 1
}

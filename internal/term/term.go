// Package term provides user-facing terminal output for the tern CLI.
// This is distinct from operational logging (see internal/clog).
//
// Output functions:
//   - Print/Printf/Println: Normal output to stdout
//   - Warn: Warnings to stderr
//   - Error: Errors to stderr
//   - Notice: Unprefixed informational lines to stderr
//   - Banner: Delimited analysis commentary to stdout
//
// This package exists to:
//  1. Centralize terminal output for consistent formatting
//  2. Provide injectable writers so tests can capture output
//  3. Allow linting to enforce no direct fmt.Print* outside this package
package term

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	xterm "golang.org/x/term"
)

// bannerWidth is the width of the delimiter rule around analysis commentary.
const bannerWidth = 60

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput sets the writer for stdout output.
// Pass nil to use os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stdout = os.Stdout
	} else {
		stdout = w
	}
}

// SetErrOutput sets the writer for stderr output.
// Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stderr = os.Stderr
	} else {
		stderr = w
	}
}

// Print formats and writes to stdout.
func Print(a ...any) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprint(stdout, a...)
}

// Printf formats according to a format specifier and writes to stdout.
func Printf(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(stdout, format, a...)
}

// Println formats and writes to stdout with a trailing newline.
func Println(a ...any) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintln(stdout, a...)
}

// Warn writes a warning message to stderr with "Warning: " prefix.
func Warn(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "Warning: %s\n", msg)
}

// Error writes an error message to stderr with "Error: " prefix.
func Error(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "Error: %s\n", msg)
}

// Notice writes an unprefixed line to stderr. Used for follow-up hints
// under a Warn or Error message.
func Notice(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "%s\n", msg)
}

// Banner writes body to stdout framed by a titled delimiter rule:
//
//	============================================================
//	<title>:
//	============================================================
//	<body>
//	============================================================
func Banner(title, body string) {
	mu.Lock()
	defer mu.Unlock()
	rule := strings.Repeat("=", bannerWidth)
	_, _ = fmt.Fprintf(stdout, "\n%s\n%s:\n%s\n%s\n%s\n\n", rule, title, rule, body, rule)
}

// Stdout returns the current stdout writer.
// Useful for passing to components that need an io.Writer.
func Stdout() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stdout
}

// Stderr returns the current stderr writer.
func Stderr() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// StdoutIsTerminal reports whether the process's stdout is an
// interactive terminal. This queries the real os.Stdout regardless of
// any writer installed with SetOutput: redirecting output inside the
// process does not change where the OS-level descriptor points.
func StdoutIsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}

// Reset resets the package to default state.
// Primarily useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	stdout = os.Stdout
	stderr = os.Stderr
}

// Discard configures the package to discard all output.
// Useful for silencing output in tests.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	stdout = io.Discard
	stderr = io.Discard
}

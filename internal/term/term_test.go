package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintFunctions(t *testing.T) {
	defer Reset()

	var out bytes.Buffer
	SetOutput(&out)

	Print("a")
	Printf("%s%d", "b", 1)
	Println("c")

	if got := out.String(); got != "ab1c\n" {
		t.Errorf("stdout output = %q, want %q", got, "ab1c\n")
	}
}

func TestWarnAndError_GoToStderr(t *testing.T) {
	defer Reset()

	var out, errOut bytes.Buffer
	SetOutput(&out)
	SetErrOutput(&errOut)

	Warn("watch out %d", 1)
	Error("broke %s", "badly")
	Notice("   a hint")

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "Warning: watch out 1\n") {
		t.Errorf("missing warning line, got %q", got)
	}
	if !strings.Contains(got, "Error: broke badly\n") {
		t.Errorf("missing error line, got %q", got)
	}
	if !strings.Contains(got, "   a hint\n") {
		t.Errorf("missing notice line, got %q", got)
	}
}

func TestBanner(t *testing.T) {
	defer Reset()

	var out bytes.Buffer
	SetOutput(&out)

	Banner("TERN AI Analysis", "All good.")

	got := out.String()
	rule := strings.Repeat("=", 60)
	if !strings.Contains(got, rule) {
		t.Errorf("banner missing delimiter rule, got %q", got)
	}
	if !strings.Contains(got, "TERN AI Analysis:\n") {
		t.Errorf("banner missing title, got %q", got)
	}
	if !strings.Contains(got, "All good.") {
		t.Errorf("banner missing body, got %q", got)
	}
	if strings.Count(got, rule) != 3 {
		t.Errorf("banner should have three rules, got %d", strings.Count(got, rule))
	}
}

func TestSetOutput_NilRestoresDefault(t *testing.T) {
	defer Reset()

	var out bytes.Buffer
	SetOutput(&out)
	if Stdout() != &out {
		t.Error("Stdout() should return the installed writer")
	}

	SetOutput(nil)
	if Stdout() == &out {
		t.Error("SetOutput(nil) should restore the default writer")
	}
}

func TestStdoutIsTerminal_FalseUnderTest(t *testing.T) {
	// go test runs with stdout attached to a pipe, never a pty.
	if StdoutIsTerminal() {
		t.Skip("test unexpectedly running with a terminal stdout")
	}
}

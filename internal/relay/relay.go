// Package relay drains one output pipe of a child process. Each relay
// owns its pipe end and its capture buffer exclusively; the two relays
// of a run share no mutable state and need no locking.
package relay

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/xdg/tern/internal/capture"
	"github.com/xdg/tern/internal/clog"
)

// Relay copies lines from Source to Console while recording them in
// Capture. Capture happens before echo, so a console that becomes
// unwritable mid-stream (broken pipe) never loses lines: the relay
// stops echoing but keeps reading and capturing until end-of-stream.
type Relay struct {
	Source  io.ReadCloser
	Console io.Writer
	Capture *capture.Buffer

	// Name identifies the stream ("stdout" or "stderr") in diagnostics.
	Name string
}

// Run drains the source until end-of-stream. Lines are read
// incrementally per line terminator, so arbitrarily long lines survive
// without truncation. The source is closed on every exit path. Run
// never fails: a read error ends the loop early with a partial capture,
// and a write error only mutes the echo.
func (r *Relay) Run() {
	defer func() { _ = r.Source.Close() }()

	br := bufio.NewReader(r.Source)
	echo := true
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			text := strings.TrimSuffix(line, "\n")
			r.Capture.Append(text)
			if echo {
				if _, werr := io.WriteString(r.Console, text+"\n"); werr != nil {
					// Downstream closed. Keep capturing; stop echoing.
					echo = false
					clog.Debug("relay %s: console write failed: %v", r.Name, werr)
				}
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				clog.Debug("relay %s: read ended early: %v", r.Name, err)
			}
			return
		}
	}
}

package cmd

import "fmt"

// ExitCodeError carries a specific process exit code up to main. It is
// how the child's exit status (or tern's synthetic 1) crosses the cobra
// boundary without being turned into a printed error.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

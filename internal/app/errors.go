package app

import "errors"

// Exit codes returned through ExitError.
const (
	ExitFailure      = 1
	ExitNeedsRewrite = 3
)

// ErrStrict is returned when -strict is set and the run produced warnings.
var ErrStrict = errors.New("warnings reported in strict mode")

// ExitError carries a process exit code with its message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

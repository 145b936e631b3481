package intake

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("intake: aborted")
	// ErrAttemptsExhausted is returned when a field stays invalid after the
	// configured number of prompt attempts.
	ErrAttemptsExhausted = errors.New("intake: attempts exhausted")
)

package subtitle

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput            = errors.New("file is empty")
	ErrMalformedCounter      = errors.New("expected a clean sequential counter")
	ErrMalformedTimeRange    = errors.New("expected a time range with exactly one -->")
	ErrInvalidTimestampShape = errors.New("invalid timestamp, expected HH:MM:SS,mmm")
	ErrInvalidTimestampField = errors.New("could not parse timestamp field")

	// ErrIncompleteRecord means the token stream broke the
	// Count/StartTime/EndTime/Subtitle ordering. Well-formed lexer output
	// never triggers it.
	ErrIncompleteRecord = errors.New("incomplete subtitle record")
)

// SyntaxError ties a fatal pipeline error to a source line.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("(line %d) %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

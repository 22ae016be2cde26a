package trajectory

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory loading.
var (
	// ErrColumnCount indicates a row without exactly four fields.
	ErrColumnCount = errors.New("trajectory: row must have 4 columns (tau x y z)")

	// ErrMalformed indicates a field that is not a number.
	ErrMalformed = errors.New("trajectory: malformed numeric field")

	// ErrEmpty indicates a table with no data rows.
	ErrEmpty = errors.New("trajectory: no samples")
)

// ParseError wraps an error with its position in the input table.
type ParseError struct {
	Line    int
	Column  int // 1-based, 0 when the whole row is at fault
	Text    string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v: %q", e.Line, e.Column, e.Wrapped, e.Text)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Wrapped, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

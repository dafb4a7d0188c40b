package dataset

import "fmt"

// ParseError reports a malformed record. Line is 1-based and counts the
// header row when there is one.
type ParseError struct {
	Line    int
	Details string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Details, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Details)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrIO              = errors.New("unable to read mesh file")
	ErrMalformedRecord = errors.New("malformed record")
	ErrNumericParse    = errors.New("invalid numeric value")
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// RecordError locates a failure on a single input line. Err wraps one of
// the sentinel errors above.
type RecordError struct {
	Line int    // 1-based line number
	Text string // line contents
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

package editorconfig

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is wrapped by every error caused by a value outside a
// field's domain.
var ErrInvalidValue = errors.New("invalid value")

// ParseError describes a recognized key whose value could not be converted.
type ParseError struct {
	Line  int // 1-based
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s = %q: %v", e.Line, e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

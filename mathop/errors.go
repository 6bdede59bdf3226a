package mathop

import (
	"errors"
	"fmt"
)

// Errors for malformed attribute values.
var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidBool   = errors.New("invalid boolean")
	ErrInvalidForm   = errors.New("invalid form")
)

// AttributeError reports a malformed value of an `<mo>` attribute.
type AttributeError struct {
	Attr  string // attribute name, e.g. "lspace"
	Value string // value as found in markup
	Err   error  // one of the ErrInvalid… errors
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("mo attribute %s=%q: %v", e.Attr, e.Value, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

package decode

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates the input is not a single well-formed JSON value.
var ErrMalformed = errors.New("decode: malformed JSON")

// Error reports where decoding stopped and why.
type Error struct {
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: %v", ErrMalformed, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformed) hold for every decode failure.
func (e *Error) Is(target error) bool {
	return target == ErrMalformed
}

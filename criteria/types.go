package criteria

import (
	"errors"
	"fmt"
)

// Sentinel errors for detection.
var (
	// ErrBoundaryTooLong is returned when the input exceeds the cap set
	// with WithMaxLen.
	ErrBoundaryTooLong = errors.New("criteria: boundary word exceeds configured maximum length")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("criteria: invalid option supplied")
)

// Option configures detection via functional arguments.
type Option func(*Options)

// Options holds detection parameters.
type Options struct {
	// MaxLen caps the accepted boundary-word length. 0 disables the cap.
	MaxLen int

	// internal error recorded during option parsing.
	err error
}

// DefaultOptions returns the default detection parameters: no length cap.
func DefaultOptions() Options {
	return Options{MaxLen: 0}
}

// WithMaxLen rejects boundary words longer than n letters with
// ErrBoundaryTooLong.
//
//	n > 0: cap at n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxLen(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLen cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLen = n
	}
}

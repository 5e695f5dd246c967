package fluent

import (
	"fmt"

	"github.com/pkg/errors"
)

// Raised conditions. Every error returned by this package wraps exactly one
// of these, so callers can branch with errors.Is.
//
// "Not found" is never an error here: lookups report absence through a
// comma-ok result, an Option, or -1.
var (
	// ErrInvalidArgument is returned when an input cannot be wrapped, e.g.
	// building a Sequence from indexed data that is not a gap-free list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch is returned when a stored value does not have the
	// type the caller asked for.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange is returned by index-addressed writes whose
	// position falls outside the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// fail wraps cause with the operation name and logs the rejection.
func fail(op string, cause error, format string, args ...any) error {
	err := errors.Wrapf(cause, "%s: %s", op, fmt.Sprintf(format, args...))
	logger().Debug("rejected", "op", op, "err", err)
	return err
}

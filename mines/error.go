package mines

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("point out of bounds")
)

// AssertionError reports a broken internal invariant. It is raised with
// panic and is never returned from a well-formed call.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

package matcher

import (
	"errors"
	"fmt"
)

var (
	ErrNilRoster         = errors.New("roster is required")
	ErrUnsatisfiable     = errors.New("draw ran out of candidates")
	ErrInvalidAssignment = errors.New("assignment violates draw constraints")
)

// UnsatisfiableError reports the member left without candidates in a failed
// draw. The failure is specific to that draw's random choices; a fresh draw
// may succeed.
type UnsatisfiableError struct {
	Member   string
	Assigned int // members already assigned when the draw failed
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("%s: no candidates left for %q after %d assignments", ErrUnsatisfiable, e.Member, e.Assigned)
}

func (e *UnsatisfiableError) Unwrap() error {
	return ErrUnsatisfiable
}

package roster

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientMembers = errors.New("at least two members are required")
	ErrEmptyMember         = errors.New("member name must not be empty")
	ErrDuplicateMember     = errors.New("duplicate member")
	ErrUnknownMember       = errors.New("unknown member")
	ErrEmptyCandidatePool  = errors.New("member has no possible recipients")
)

// EmptyCandidatePoolError reports a member whose exclusions, together with
// the member itself, cover the whole roster.
type EmptyCandidatePoolError struct {
	Member string
}

func (e *EmptyCandidatePoolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrEmptyCandidatePool, e.Member)
}

func (e *EmptyCandidatePoolError) Unwrap() error {
	return ErrEmptyCandidatePool
}

package fragment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when a fragment index is outside the
	// active sequence.
	ErrInvalidIndex = errors.New("invalid fragment index")

	// ErrNoSuchMove is matched by every boundary condition below. The
	// request was well-formed but there is nothing to do at that position.
	ErrNoSuchMove = errors.New("no such move")

	ErrNoNextFragment  = &MoveError{Reason: "invalid gap: no next fragment to join"}
	ErrAlreadyFirst    = &MoveError{Reason: "already first fragment"}
	ErrAlreadyLast     = &MoveError{Reason: "already last fragment: no next fragment"}
	ErrNothingToRevert = &MoveError{Reason: "nothing to revert: already at the original split"}
)

// MoveError describes an edit that cannot be applied at a sequence boundary.
type MoveError struct {
	Reason string
}

func (e *MoveError) Error() string { return e.Reason }

// Is lets errors.Is(err, ErrNoSuchMove) match every boundary condition.
func (e *MoveError) Is(target error) bool { return target == ErrNoSuchMove }

// IndexError reports an index that does not address a fragment of the
// active sequence.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("fragment %d out of range (sequence has %d fragments)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

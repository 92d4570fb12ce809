package moves

import (
	"errors"
	"fmt"
)

// Domain errors for applying moves.
var (
	// ErrIndexOutOfRange indicates a move addressing a position outside the array.
	ErrIndexOutOfRange = errors.New("moves: index out of range")

	// ErrUnknownKind indicates a move whose kind is not swap, overwrite or probe.
	ErrUnknownKind = errors.New("moves: unknown move kind")
)

// MoveError wraps an error with the move and log position that caused it.
type MoveError struct {
	Step    int
	Move    Move
	Wrapped error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Move, e.Wrapped)
}

func (e *MoveError) Unwrap() error {
	return e.Wrapped
}

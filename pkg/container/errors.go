package container

import "errors"

// Closed failure set for Container operations. Every fallible operation
// returns one of these; callers match with errors.Is.
var (
	ErrFull                 = errors.New("container is full")
	ErrNotFound             = errors.New("item not found")
	ErrIndexOutOfBounds     = errors.New("slot index out of bounds")
	ErrQuantityInsufficient = errors.New("held quantity insufficient")
)

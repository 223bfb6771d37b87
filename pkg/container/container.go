package container

// Container is the capability set any bounded slotted collection of T must
// expose. A container holds a fixed number of slots, each empty or holding
// one value; slot indices are stable for the container's lifetime and range
// over [0, Capacity()).
//
// Implementations are not safe for concurrent use. A container reused across
// goroutines must be serialized by the caller.
type Container[T comparable] interface {
	// Capacity returns the fixed number of slots.
	Capacity() int

	// Count returns the number of occupied slots.
	Count() int

	// Contains reports whether some slot holds a value structurally equal
	// to item.
	Contains(item T) bool

	// Add inserts item into the first empty slot in ascending index order.
	// Returns ErrFull when no slot is empty.
	Add(item T) error

	// AddAt places item at the given slot, overwriting any occupant.
	// Returns ErrIndexOutOfBounds when slot is outside [0, Capacity()).
	AddAt(item T, slot int) error

	// Remove consumes item's quantity from the first slot matching its
	// kind, scanning in ascending index order. Returns ErrNotFound when no
	// slot matches.
	Remove(item T) error

	// RemoveAt clears an occupied slot. Returns ErrIndexOutOfBounds when
	// slot is out of range, ErrNotFound when the slot is already empty.
	RemoveAt(slot int) error

	// GetAt returns a copy of the slot's contents. Returns
	// ErrIndexOutOfBounds when slot is out of range, ErrNotFound when the
	// slot is empty.
	GetAt(slot int) (T, error)

	// Swap exchanges the contents of two slots regardless of occupancy;
	// swapping two empty slots is valid. Returns ErrIndexOutOfBounds when
	// either index is out of range.
	Swap(slotA, slotB int) error
}

package container

import "fmt"

// Item — one slot's payload: a kind identifier plus the quantity held.
// Values are replaced wholesale, never mutated in place.
type Item struct {
	identifier uint32
	quantity   uint32
}

// NewItem builds an Item of the given kind and quantity.
func NewItem(identifier, quantity uint32) Item {
	return Item{
		identifier: identifier,
		quantity:   quantity,
	}
}

// Identifier returns the kind identifier. Equal identifiers denote the same
// kind for matching and removal.
func (i Item) Identifier() uint32 {
	return i.identifier
}

// Quantity returns the count held within this value.
func (i Item) Quantity() uint32 {
	return i.quantity
}

// Compare orders items structurally: identifier first, then quantity.
// Returns -1 when i sorts before other, +1 after, 0 when equal.
func (i Item) Compare(other Item) int {
	switch {
	case i.identifier < other.identifier:
		return -1
	case i.identifier > other.identifier:
		return 1
	case i.quantity < other.quantity:
		return -1
	case i.quantity > other.quantity:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable rendering, e.g. "10(x3)".
func (i Item) String() string {
	return fmt.Sprintf("%d(x%d)", i.identifier, i.quantity)
}

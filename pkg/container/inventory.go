package container

import "strings"

// Inventory — the reference Container implementation: a fixed-length slot
// sequence holding Items. A nil slot is empty. Capacity never changes after
// construction and slots are never renumbered, only cleared or overwritten.
//
// Not safe for concurrent use; callers must serialize access.
type Inventory struct {
	capacity  int
	itemCount int // occupied slots, maintained by every mutating op
	slots     []*Item
}

var _ Container[Item] = (*Inventory)(nil)

// NewInventory creates an empty Inventory with exactly capacity slots.
// A negative capacity is treated as zero.
func NewInventory(capacity int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	return &Inventory{
		capacity: capacity,
		slots:    make([]*Item, capacity),
	}
}

// Capacity returns the fixed number of slots.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	return inv.itemCount
}

// Contains reports whether some slot holds an item structurally equal to
// item (identifier and quantity both).
func (inv *Inventory) Contains(item Item) bool {
	for _, slot := range inv.slots {
		if slot != nil && *slot == item {
			return true
		}
	}
	return false
}

// Add inserts item into the first empty slot in ascending index order.
// Returns ErrFull when every slot is occupied.
//
// TODO: stack onto an existing slot of the same identifier once stacking
// rules are defined; for now a kind already present still takes a fresh slot.
func (inv *Inventory) Add(item Item) error {
	for i, slot := range inv.slots {
		if slot == nil {
			inv.slots[i] = &item
			inv.itemCount++
			return nil
		}
	}
	return ErrFull
}

// AddAt places item at slot, overwriting any occupant without releasing it
// through the removal path. The occupied count is incremented even when the
// slot was already occupied, so overwriting a full slot corrupts the count.
//
// TODO: decide whether AddAt should release a previous occupant instead of
// double-counting it.
func (inv *Inventory) AddAt(item Item, slot int) error {
	if slot < 0 || slot >= inv.capacity {
		return ErrIndexOutOfBounds
	}

	inv.slots[slot] = &item
	inv.itemCount++
	return nil
}

// Remove consumes item's quantity from the first slot whose held item shares
// item's identifier, scanning in ascending index order. The slot is cleared
// when the requested quantity exactly covers what is held; otherwise it is
// left holding the difference (requested minus held). Returns
// ErrQuantityInsufficient when the slot holds more than requested,
// ErrNotFound when no slot matches the identifier.
func (inv *Inventory) Remove(item Item) error {
	for i, slot := range inv.slots {
		if slot == nil || slot.identifier != item.identifier {
			continue
		}

		if slot.quantity > item.quantity {
			return ErrQuantityInsufficient
		}

		remainder := item.quantity - slot.quantity
		if remainder == 0 {
			inv.slots[i] = nil
			inv.itemCount--
		} else {
			replacement := NewItem(slot.identifier, remainder)
			inv.slots[i] = &replacement
		}
		return nil
	}
	return ErrNotFound
}

// RemoveAt clears an occupied slot. Returns ErrIndexOutOfBounds when slot is
// out of range, ErrNotFound when the slot is already empty.
func (inv *Inventory) RemoveAt(slot int) error {
	if slot < 0 || slot >= inv.capacity {
		return ErrIndexOutOfBounds
	}
	if inv.slots[slot] == nil {
		return ErrNotFound
	}

	inv.slots[slot] = nil
	inv.itemCount--
	return nil
}

// GetAt returns a copy of the slot's contents. Returns ErrIndexOutOfBounds
// when slot is out of range, ErrNotFound when the slot is empty.
func (inv *Inventory) GetAt(slot int) (Item, error) {
	if slot < 0 || slot >= inv.capacity {
		return Item{}, ErrIndexOutOfBounds
	}
	if inv.slots[slot] == nil {
		return Item{}, ErrNotFound
	}
	return *inv.slots[slot], nil
}

// Swap exchanges the contents of two slots regardless of occupancy. The
// occupied count is invariant under swap. Returns ErrIndexOutOfBounds when
// either index is out of range.
func (inv *Inventory) Swap(slotA, slotB int) error {
	if slotA < 0 || slotA >= inv.capacity || slotB < 0 || slotB >= inv.capacity {
		return ErrIndexOutOfBounds
	}

	inv.slots[slotA], inv.slots[slotB] = inv.slots[slotB], inv.slots[slotA]
	return nil
}

// Clone returns a deep copy sharing no slot storage with the original.
func (inv *Inventory) Clone() *Inventory {
	clone := &Inventory{
		capacity:  inv.capacity,
		itemCount: inv.itemCount,
		slots:     make([]*Item, inv.capacity),
	}
	for i, slot := range inv.slots {
		if slot != nil {
			item := *slot
			clone.slots[i] = &item
		}
	}
	return clone
}

// String renders the slot sequence for debugging, e.g. "[_ _ 10(x1) _ _]".
// An underscore marks an empty slot.
func (inv *Inventory) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, slot := range inv.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if slot == nil {
			b.WriteByte('_')
		} else {
			b.WriteString(slot.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

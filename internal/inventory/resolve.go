package inventory

import "fmt"

// RefKind tells where a resolved item lives.
type RefKind int

const (
	RefNotOwned RefKind = iota
	RefEquipped
	RefAccessory
	RefBag
)

// SlotRef is the result of locating an item in a snapshot.
type SlotRef struct {
	Kind RefKind

	// Slot is set when Kind is RefEquipped.
	Slot Slot

	// Index is the accessory index or bag index.
	Index int
}

func NotOwned() SlotRef                  { return SlotRef{Kind: RefNotOwned} }
func EquippedAt(slot Slot) SlotRef       { return SlotRef{Kind: RefEquipped, Slot: slot} }
func AccessoryAt(index int) SlotRef      { return SlotRef{Kind: RefAccessory, Index: index} }
func BagAt(index int) SlotRef            { return SlotRef{Kind: RefBag, Index: index} }
func (r SlotRef) Owned() bool            { return r.Kind != RefNotOwned }
func (r SlotRef) IsWeapon() bool         { return r.Kind == RefEquipped && r.Slot.IsWeapon() }
func (r SlotRef) EquippedIn(s Slot) bool { return r.Kind == RefEquipped && r.Slot == s }

func (r SlotRef) String() string {
	switch r.Kind {
	case RefEquipped:
		return "equipped:" + r.Slot.String()
	case RefAccessory:
		return fmt.Sprintf("accessory:%d", r.Index)
	case RefBag:
		return fmt.Sprintf("bag:%d", r.Index)
	default:
		return "not-owned"
	}
}

// Locate finds where an item currently resides. Equipped copies are reported
// ahead of spare copies so that an item already worn never triggers a swap.
// Among bag copies the one ranked highest wins, ties going to the lowest index.
// A nil rank falls back to ByLevel.
func Locate(snap *Snapshot, id ItemId, rank Ranker) SlotRef {
	if id == EmptyItem || snap == nil {
		return NotOwned()
	}
	if rank == nil {
		rank = ByLevel
	}

	for _, slot := range FixedSlots {
		if slot == SlotWeapon2 && !snap.Weapon2Unlocked {
			continue
		}
		if snap.Get(slot).Id == id {
			return EquippedAt(slot)
		}
	}

	for i, acc := range snap.Accessories {
		if acc.Id == id {
			return AccessoryAt(i)
		}
	}

	best := -1
	for i, it := range snap.Bag {
		if it.Id != id {
			continue
		}
		if best < 0 || rank(it, snap.Bag[best]) > 0 {
			best = i
		}
	}
	if best >= 0 {
		return BagAt(best)
	}

	return NotOwned()
}

// Item returns the item a reference points at, or the zero item.
func (s *Snapshot) Item(ref SlotRef) Item {
	switch ref.Kind {
	case RefEquipped:
		return s.Get(ref.Slot)
	case RefAccessory:
		if ref.Index >= 0 && ref.Index < len(s.Accessories) {
			return s.Accessories[ref.Index]
		}
	case RefBag:
		if ref.Index >= 0 && ref.Index < len(s.Bag) {
			return s.Bag[ref.Index]
		}
	}
	return Item{}
}

package inventory

import "fmt"

// Slot is one of the fixed equip slots.
type Slot int

const (
	SlotHead Slot = iota
	SlotChest
	SlotLegs
	SlotBoots
	SlotWeapon
	SlotWeapon2
)

// FixedSlots lists the fixed equip slots in resolution order.
var FixedSlots = []Slot{SlotHead, SlotChest, SlotLegs, SlotBoots, SlotWeapon, SlotWeapon2}

func (s Slot) String() string {
	switch s {
	case SlotHead:
		return "head"
	case SlotChest:
		return "chest"
	case SlotLegs:
		return "legs"
	case SlotBoots:
		return "boots"
	case SlotWeapon:
		return "weapon"
	case SlotWeapon2:
		return "weapon2"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// IsWeapon returns true for either weapon slot.
func (s Slot) IsWeapon() bool {
	return s == SlotWeapon || s == SlotWeapon2
}

// Snapshot is a point-in-time view of a character's gear.
type Snapshot struct {
	Head    Item `json:"head"`
	Chest   Item `json:"chest"`
	Legs    Item `json:"legs"`
	Boots   Item `json:"boots"`
	Weapon  Item `json:"weapon"`
	Weapon2 Item `json:"weapon2"`

	// Weapon2Unlocked gates the secondary weapon slot.
	Weapon2Unlocked bool `json:"weapon2_unlocked"`

	// Accessories holds one entry per unlocked accessory slot.
	Accessories []Item `json:"accessories,omitempty"`

	// Bag is the bulk, non-equipped storage. Indices are stable positions.
	Bag []Item `json:"bag,omitempty"`
}

// Get returns the item in a fixed slot.
func (s *Snapshot) Get(slot Slot) Item {
	if p := s.slot(slot); p != nil {
		return *p
	}
	return Item{}
}

// Set places an item into a fixed slot.
func (s *Snapshot) Set(slot Slot, it Item) {
	if p := s.slot(slot); p != nil {
		*p = it
	}
}

func (s *Snapshot) slot(slot Slot) *Item {
	switch slot {
	case SlotHead:
		return &s.Head
	case SlotChest:
		return &s.Chest
	case SlotLegs:
		return &s.Legs
	case SlotBoots:
		return &s.Boots
	case SlotWeapon:
		return &s.Weapon
	case SlotWeapon2:
		return &s.Weapon2
	default:
		return nil
	}
}

// Loadout captures the ids currently equipped: fixed slots first, then every
// filled accessory slot in index order. Empty slots are left out.
func (s *Snapshot) Loadout() Loadout {
	l := Loadout{}
	for _, slot := range FixedSlots {
		if slot == SlotWeapon2 && !s.Weapon2Unlocked {
			continue
		}
		if it := s.Get(slot); !it.Empty() {
			l = append(l, it.Id)
		}
	}
	for _, acc := range s.Accessories {
		if !acc.Empty() {
			l = append(l, acc.Id)
		}
	}
	return l
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Accessories = append([]Item(nil), s.Accessories...)
	out.Bag = append([]Item(nil), s.Bag...)
	return out
}

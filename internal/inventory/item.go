package inventory

import (
	"fmt"
	"strings"
)

// ItemId identifies an item definition. The zero value marks an empty slot.
type ItemId int

const EmptyItem ItemId = 0

// Category defines which kind of slot an item can be equipped into.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryHead
	CategoryChest
	CategoryLegs
	CategoryBoots
	CategoryWeapon
	CategoryAccessory
)

var categoryNames = map[Category]string{
	CategoryUnknown:   "unknown",
	CategoryHead:      "head",
	CategoryChest:     "chest",
	CategoryLegs:      "legs",
	CategoryBoots:     "boots",
	CategoryWeapon:    "weapon",
	CategoryAccessory: "accessory",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for k, v := range categoryNames {
		if strings.EqualFold(v, string(text)) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown item category: %s", text)
}

// Armor returns the fixed slot an armor category is equipped into.
func (c Category) Armor() (Slot, bool) {
	switch c {
	case CategoryHead:
		return SlotHead, true
	case CategoryChest:
		return SlotChest, true
	case CategoryLegs:
		return SlotLegs, true
	case CategoryBoots:
		return SlotBoots, true
	default:
		return 0, false
	}
}

// Item is a single item as seen in an inventory snapshot.
type Item struct {
	Id       ItemId   `json:"id"`
	Category Category `json:"category"`

	// Level is the default ranking key when the same item is held more than once.
	Level int `json:"level,omitempty"`
}

// Empty returns true if the item represents an empty slot.
func (i Item) Empty() bool {
	return i.Id == EmptyItem
}

// Ranker orders duplicate copies of an item. It returns a positive number
// when a is preferred over b, negative when b is preferred, and 0 on a tie.
type Ranker func(a, b Item) int

// ByLevel prefers the higher level copy.
func ByLevel(a, b Item) int {
	return a.Level - b.Level
}

// Loadout is an ordered list of desired item ids.
type Loadout []ItemId

// Clone returns a copy that does not share backing storage.
func (l Loadout) Clone() Loadout {
	if l == nil {
		return nil
	}
	out := make(Loadout, len(l))
	copy(out, l)
	return out
}

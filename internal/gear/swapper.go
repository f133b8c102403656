package gear

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-gearlock/internal/inventory"
)

// Host is the slice of the game a Swapper reads from and mutates.
// Mutations have no failure channel; once issued they are assumed to land.
type Host interface {
	Inventory() inventory.Snapshot
	Equip(dest inventory.Slot, src inventory.SlotRef)
	EquipAccessory(dest int, src inventory.SlotRef)
	RecomputeBonuses()
	RefreshInventory()
}

// Swapper moves a character into a desired loadout with as few equip calls as possible.
type Swapper struct {
	host Host
	rank inventory.Ranker
}

func NewSwapper(h Host, opts ...SwapperOpt) *Swapper {
	s := &Swapper{
		host: h,
		rank: inventory.ByLevel,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Apply equips every owned item of the loadout. Items that are already in
// place are left alone and items the character doesn't own are skipped.
// Bonuses are recomputed and the inventory refreshed once at the end, even
// for an empty loadout.
func (s *Swapper) Apply(ctx context.Context, l inventory.Loadout) {
	p := pass{
		Swapper: s,
		weapon:  inventory.SlotWeapon,
		used:    map[int]bool{},
	}

	for _, id := range l {
		p.place(ctx, id)
	}
	p.placeAccessories(ctx)

	s.host.RecomputeBonuses()
	s.host.RefreshInventory()

	slog.DebugContext(ctx, "applied loadout", "items", len(l), "moved", p.moved)
}

// pass holds the bookkeeping for a single Apply call.
type pass struct {
	*Swapper

	// weapon is the next weapon slot to fill.
	weapon inventory.Slot

	// used marks accessory destinations claimed during this pass.
	used    map[int]bool
	pending []inventory.ItemId

	moved int
}

func (p *pass) place(ctx context.Context, id inventory.ItemId) {
	snap := p.host.Inventory()
	ref := inventory.Locate(&snap, id, p.rank)

	switch ref.Kind {
	case inventory.RefNotOwned:
		slog.DebugContext(ctx, "item not owned", "item", id)
		return
	case inventory.RefAccessory:
		p.used[ref.Index] = true
		return
	}

	item := snap.Item(ref)
	category := item.Category
	if ref.Kind == inventory.RefEquipped {
		category = slotCategory(ref.Slot)
	}

	switch category {
	case inventory.CategoryAccessory:
		p.pending = append(p.pending, id)

	case inventory.CategoryWeapon:
		p.placeWeapon(ctx, id, ref, snap.Weapon2Unlocked)

	default:
		dest, ok := category.Armor()
		if !ok {
			slog.DebugContext(ctx, "item has no equip slot", "item", id, "category", category)
			return
		}
		if ref.EquippedIn(dest) {
			return
		}
		slog.DebugContext(ctx, "equipping", "item", id, "from", ref, "slot", dest)
		p.host.Equip(dest, ref)
		p.host.RecomputeBonuses()
		p.moved++
	}
}

func (p *pass) placeWeapon(ctx context.Context, id inventory.ItemId, ref inventory.SlotRef, weapon2Unlocked bool) {
	if ref.Kind == inventory.RefEquipped && ref.Slot < p.weapon {
		// Already placed earlier in this pass.
		return
	}
	dest := p.weapon
	if dest > inventory.SlotWeapon2 || (dest == inventory.SlotWeapon2 && !weapon2Unlocked) {
		slog.DebugContext(ctx, "no weapon slot left", "item", id)
		return
	}
	p.weapon++

	if ref.EquippedIn(dest) {
		return
	}
	slog.DebugContext(ctx, "equipping", "item", id, "from", ref, "slot", dest)
	p.host.Equip(dest, ref)
	p.host.RecomputeBonuses()
	p.moved++
}

// placeAccessories puts deferred accessories into the lowest destinations
// nobody claimed this pass. Items are located again because earlier swaps
// may have moved things around.
func (p *pass) placeAccessories(ctx context.Context) {
	for _, id := range p.pending {
		snap := p.host.Inventory()
		ref := inventory.Locate(&snap, id, p.rank)
		if ref.Kind == inventory.RefAccessory {
			p.used[ref.Index] = true
			continue
		}
		if ref.Kind != inventory.RefBag {
			continue
		}

		dest := -1
		for i := range snap.Accessories {
			if !p.used[i] {
				dest = i
				break
			}
		}
		if dest < 0 {
			slog.DebugContext(ctx, "no accessory slot left", "item", id)
			continue
		}

		slog.DebugContext(ctx, "equipping accessory", "item", id, "from", ref, "slot", dest)
		p.host.EquipAccessory(dest, ref)
		p.used[dest] = true
		p.moved++
	}
}

func slotCategory(s inventory.Slot) inventory.Category {
	switch s {
	case inventory.SlotHead:
		return inventory.CategoryHead
	case inventory.SlotChest:
		return inventory.CategoryChest
	case inventory.SlotLegs:
		return inventory.CategoryLegs
	case inventory.SlotBoots:
		return inventory.CategoryBoots
	case inventory.SlotWeapon, inventory.SlotWeapon2:
		return inventory.CategoryWeapon
	default:
		return inventory.CategoryUnknown
	}
}

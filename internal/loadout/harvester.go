package loadout

import (
	"context"
	"log/slog"
)

// Orchard is the yggdrasil tree the harvester picks from.
type Orchard interface {
	FruitsReady() bool
	Harvest()
}

// Harvester collects yggdrasil fruits in the yggdrasil loadout and puts the
// previous gear back afterwards.
type Harvester struct {
	arbiter *Arbiter
	orchard Orchard
}

func NewHarvester(a *Arbiter, o Orchard) *Harvester {
	return &Harvester{arbiter: a, orchard: o}
}

// Tick harvests if fruits are ready and the gear lock is free. Any hold,
// titan or passive, postpones the harvest to a later tick.
func (h *Harvester) Tick(ctx context.Context) error {
	if !h.orchard.FruitsReady() {
		return nil
	}

	a := h.arbiter
	if a.CurrentLock() != LockNone {
		return nil
	}

	snap := a.host.Inventory()
	before := snap.Loadout()

	if !a.TryYggdrasilSwap(ctx) {
		return nil
	}

	h.orchard.Harvest()
	slog.InfoContext(ctx, "harvested yggdrasil")

	a.swapper.Apply(ctx, before)
	a.ReleasePassive(ctx)

	return nil
}

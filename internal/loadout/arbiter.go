package loadout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-gearlock/internal/inventory"
	"github.com/pixil98/go-gearlock/internal/titan"
)

// Swapper equips a loadout.
type Swapper interface {
	Apply(context.Context, inventory.Loadout)
}

// Predictor reports whether a titan spawn is imminent.
type Predictor interface {
	IsUrgent(context.Context, titan.Host) bool
}

// Host is the game state the arbiter reads.
type Host interface {
	titan.Host
	Inventory() inventory.Snapshot
}

// Loadouts are the two fixed gear sets the arbiter switches between.
type Loadouts struct {
	Titan     inventory.Loadout
	Yggdrasil inventory.Loadout
}

// Arbiter decides which goal owns the character's gear. Titan holds are
// taken automatically ahead of a spawn and undone afterwards; yggdrasil
// holds are requested by the harvest loop and never preempt a titan hold.
//
// The arbiter is not safe for concurrent use. It is driven from a single
// tick loop.
type Arbiter struct {
	host      Host
	swapper   Swapper
	predictor Predictor
	loadouts  Loadouts
	pub       Publisher
	now       func() time.Time

	lock   LockState
	holdId string

	// saved is the gear worn before the current titan hold. It is non-nil
	// exactly while the titan lock is held.
	saved inventory.Loadout
}

func NewArbiter(h Host, s Swapper, p Predictor, l Loadouts, opts ...ArbiterOpt) *Arbiter {
	a := &Arbiter{
		host:      h,
		swapper:   s,
		predictor: p,
		loadouts: Loadouts{
			Titan:     l.Titan.Clone(),
			Yggdrasil: l.Yggdrasil.Clone(),
		},
		now:  time.Now,
		lock: LockNone,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// CurrentLock returns the current holder of the gear lock.
func (a *Arbiter) CurrentLock() LockState {
	return a.lock
}

// Saved returns a copy of the gear captured when the titan lock was taken.
func (a *Arbiter) Saved() inventory.Loadout {
	return a.saved.Clone()
}

// Tick runs one arbitration pass. It never fails; the error return
// satisfies the driver's ticker interface.
func (a *Arbiter) Tick(ctx context.Context) error {
	if len(a.loadouts.Titan) == 0 {
		return nil
	}

	switch a.lock {
	case LockYggdrasil:
		return nil

	case LockTitan:
		if a.predictor.IsUrgent(ctx, a.host) {
			return nil
		}
		a.releaseTitan(ctx)

	case LockNone:
		if !a.predictor.IsUrgent(ctx, a.host) {
			return nil
		}
		a.acquireTitan(ctx)
	}

	return nil
}

func (a *Arbiter) acquireTitan(ctx context.Context) {
	a.acquire(ctx, LockTitan)

	snap := a.host.Inventory()
	a.saved = snap.Loadout()

	slog.InfoContext(ctx, "titan spawning soon, swapping gear", "hold", a.holdId, "saved", len(a.saved))
	a.swapper.Apply(ctx, a.loadouts.Titan)
	a.publish(ctx, EventAcquired, LockNone, a.loadouts.Titan)
}

func (a *Arbiter) releaseTitan(ctx context.Context) {
	saved := a.saved
	slog.InfoContext(ctx, "titans done, restoring gear", "hold", a.holdId, "items", len(saved))
	a.swapper.Apply(ctx, saved)
	a.saved = nil

	a.publish(ctx, EventReleased, LockTitan, saved)
	a.release()
}

// RequestPassiveSwap takes the yggdrasil lock and equips l. It returns false
// without touching gear while a titan hold is active. Gear is not restored
// when the hold is released.
func (a *Arbiter) RequestPassiveSwap(ctx context.Context, l inventory.Loadout) bool {
	if a.lock == LockTitan {
		slog.DebugContext(ctx, "yggdrasil swap rejected, titan lock held", "hold", a.holdId)
		a.publish(ctx, EventRejected, LockTitan, l)
		return false
	}

	prev := a.lock
	if prev != LockYggdrasil {
		a.acquire(ctx, LockYggdrasil)
	}
	a.swapper.Apply(ctx, l)
	a.publish(ctx, EventAcquired, prev, l)
	return true
}

// TryYggdrasilSwap requests a passive swap into the configured yggdrasil loadout.
func (a *Arbiter) TryYggdrasilSwap(ctx context.Context) bool {
	return a.RequestPassiveSwap(ctx, a.loadouts.Yggdrasil)
}

// ReleasePassive drops the yggdrasil lock. It returns false if the lock
// wasn't held by yggdrasil.
func (a *Arbiter) ReleasePassive(ctx context.Context) bool {
	if a.lock != LockYggdrasil {
		return false
	}
	a.publish(ctx, EventReleased, LockYggdrasil, nil)
	a.release()
	return true
}

func (a *Arbiter) acquire(ctx context.Context, l LockState) {
	a.lock = l
	a.holdId = uuid.New().String()
	slog.DebugContext(ctx, "acquired gear lock", "lock", l, "hold", a.holdId)
}

func (a *Arbiter) release() {
	a.lock = LockNone
	a.holdId = ""
}

func (a *Arbiter) publish(ctx context.Context, kind EventKind, prev LockState, items inventory.Loadout) {
	if a.pub == nil {
		return
	}

	lock := a.lock
	if kind == EventReleased {
		lock = LockNone
	}

	ev := Event{
		HoldId:   a.holdId,
		Kind:     kind,
		Lock:     lock,
		Previous: prev,
		Items:    items.Clone(),
		Time:     a.now(),
	}
	if err := a.pub.Publish(ev); err != nil {
		slog.WarnContext(ctx, "publishing lock event", "kind", kind, "error", err)
	}
}

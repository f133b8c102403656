package sim

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/pixil98/go-gearlock/internal/inventory"
	"github.com/pixil98/go-gearlock/internal/titan"
)

// OpKind identifies a recorded host mutation.
type OpKind int

const (
	OpEquip OpKind = iota
	OpEquipAccessory
	OpRecompute
	OpRefresh
)

// Op is one recorded call against the host.
type Op struct {
	Kind OpKind
	Slot inventory.Slot
	Dest int
	Src  inventory.SlotRef
}

// Host is an in-memory game host. Equip calls swap items between positions
// the way the game does: the displaced item takes the source position.
type Host struct {
	mu     sync.Mutex
	state  State
	ops    []Op
	titans []titan.Titan

	harvests int
}

// NewHost creates a host from a starting state. The state is copied.
func NewHost(s State, opts ...HostOpt) *Host {
	st := s
	st.Gear = s.Gear.Clone()
	st.Titans = slices.Clone(s.Titans)
	st.Progress.Achievements = slices.Clone(s.Progress.Achievements)
	st.Progress.EnemyKills = cloneCounts(s.Progress.EnemyKills)
	st.Progress.TitanKills = cloneCounts(s.Progress.TitanKills)

	h := &Host{
		state:  st,
		titans: titan.DefaultTitans(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func cloneCounts(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Inventory returns a copy of the current gear.
func (h *Host) Inventory() inventory.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Gear.Clone()
}

// Equip moves the item at src into a fixed slot.
func (h *Host) Equip(dest inventory.Slot, src inventory.SlotRef) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ops = append(h.ops, Op{Kind: OpEquip, Slot: dest, Src: src})

	g := &h.state.Gear
	incoming, ok := h.take(src)
	if !ok {
		return
	}
	h.put(src, g.Get(dest))
	g.Set(dest, incoming)
}

// EquipAccessory moves the item at src into an accessory slot.
func (h *Host) EquipAccessory(dest int, src inventory.SlotRef) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ops = append(h.ops, Op{Kind: OpEquipAccessory, Dest: dest, Src: src})

	g := &h.state.Gear
	if dest < 0 || dest >= len(g.Accessories) {
		return
	}
	incoming, ok := h.take(src)
	if !ok {
		return
	}
	h.put(src, g.Accessories[dest])
	g.Accessories[dest] = incoming
}

func (h *Host) take(ref inventory.SlotRef) (inventory.Item, bool) {
	g := &h.state.Gear
	switch ref.Kind {
	case inventory.RefEquipped:
		return g.Get(ref.Slot), true
	case inventory.RefAccessory:
		if ref.Index >= 0 && ref.Index < len(g.Accessories) {
			return g.Accessories[ref.Index], true
		}
	case inventory.RefBag:
		if ref.Index >= 0 && ref.Index < len(g.Bag) {
			return g.Bag[ref.Index], true
		}
	}
	return inventory.Item{}, false
}

func (h *Host) put(ref inventory.SlotRef, it inventory.Item) {
	g := &h.state.Gear
	switch ref.Kind {
	case inventory.RefEquipped:
		g.Set(ref.Slot, it)
	case inventory.RefAccessory:
		g.Accessories[ref.Index] = it
	case inventory.RefBag:
		g.Bag[ref.Index] = it
	}
}

func (h *Host) RecomputeBonuses() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, Op{Kind: OpRecompute})
}

func (h *Host) RefreshInventory() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, Op{Kind: OpRefresh})
}

// Ops returns every recorded call since the last reset.
func (h *Host) Ops() []Op {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.ops)
}

// Count returns how many recorded calls were of the given kind.
func (h *Host) Count(kind OpKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, op := range h.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// ResetOps clears the call record.
func (h *Host) ResetOps() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = nil
}

func (h *Host) AdventureAvailable() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.AdventureAvailable
}

func (h *Host) SetAdventureAvailable(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.AdventureAvailable = v
}

func (h *Host) HighestAutokill() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.HighestAutokill
}

func (h *Host) BossId() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress().BossId()
}

func (h *Host) EffectiveBossId() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress().EffectiveBossId()
}

func (h *Host) AchievementComplete(i int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress().AchievementComplete(i)
}

func (h *Host) EnemyKills(i int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress().EnemyKills(i)
}

func (h *Host) TitanKills(n int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.progress().TitanKills(n)
}

// progress reads the state without locking. Callers hold h.mu.
func (h *Host) progress() progressView {
	return progressView{p: &h.state.Progress}
}

// progressView satisfies titan.Progress over a State's counters.
type progressView struct {
	p *Progress
}

func (v progressView) BossId() int                    { return v.p.BossId }
func (v progressView) EffectiveBossId() int           { return v.p.EffectiveBossId }
func (v progressView) AchievementComplete(i int) bool { return slices.Contains(v.p.Achievements, i) }
func (v progressView) EnemyKills(i int) int           { return v.p.EnemyKills[i] }
func (v progressView) TitanKills(n int) int           { return v.p.TitanKills[n] }

// SpawnInterval returns titan n's respawn interval. Unknown titans never spawn.
func (h *Host) SpawnInterval(n int) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.titan(n); ok {
		return t.Interval
	}
	return math.Inf(1)
}

// SinceSpawn returns the seconds since titan n last spawned.
func (h *Host) SinceSpawn(n int) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.titan(n); ok {
		return t.Elapsed
	}
	return 0
}

// SetSinceSpawn overrides titan n's elapsed timer.
func (h *Host) SetSinceSpawn(n int, seconds float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n >= 1 && n <= len(h.state.Titans) {
		h.state.Titans[n-1].Elapsed = seconds
	}
}

// killable reports whether the titan at index i is autokilled when it spawns.
func (h *Host) killable(i int) bool {
	if i >= h.state.HighestAutokill || i >= len(h.titans) {
		return false
	}
	return h.titans[i].Unlocked(h.progress())
}

func (h *Host) titan(n int) (TitanTimer, bool) {
	if n < 1 || n > len(h.state.Titans) {
		return TitanTimer{}, false
	}
	return h.state.Titans[n-1], true
}

func (h *Host) FruitsReady() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.FruitInterval > 0 && h.state.FruitElapsed >= h.state.FruitInterval
}

func (h *Host) Harvest() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.FruitElapsed = 0
	h.harvests++
}

// Harvests returns how many times fruits were harvested.
func (h *Host) Harvests() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.harvests
}

// Advance moves every timer forward. Titans that reach their interval spawn
// and restart their timer. A spawn only counts as a kill when the titan is
// unlocked and within the autokill range.
func (h *Host) Advance(ctx context.Context, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	secs := d.Seconds()
	for i := range h.state.Titans {
		t := &h.state.Titans[i]
		t.Elapsed += secs
		if t.Elapsed < t.Interval {
			continue
		}
		t.Elapsed = 0

		if !h.killable(i) {
			slog.DebugContext(ctx, "titan spawned", "titan", i+1)
			continue
		}
		if h.state.Progress.TitanKills == nil {
			h.state.Progress.TitanKills = map[int]int{}
		}
		h.state.Progress.TitanKills[i+1]++
		slog.DebugContext(ctx, "titan killed", "titan", i+1)
	}
	if h.state.FruitInterval > 0 {
		h.state.FruitElapsed += secs
	}
}

// Clock advances a Host by a fixed step every tick.
type Clock struct {
	host *Host
	step time.Duration
}

func NewClock(h *Host, step time.Duration) *Clock {
	return &Clock{host: h, step: step}
}

func (c *Clock) Tick(ctx context.Context) error {
	c.host.Advance(ctx, c.step)
	return nil
}

package titan

import (
	"context"
	"log/slog"
	"math"
	"time"
)

const DefaultLookahead = 30 * time.Second

// Progress exposes the character progression unlock checks read.
type Progress interface {
	BossId() int
	EffectiveBossId() int
	AchievementComplete(int) bool
	EnemyKills(int) int
	TitanKills(int) int
}

// Timers exposes the titan respawn clocks, in seconds.
type Timers interface {
	SpawnInterval(n int) float64
	SinceSpawn(n int) float64
}

// Host is everything the predictor reads from the game.
type Host interface {
	Progress
	Timers

	// AdventureAvailable gates prediction; nothing is urgent while the
	// adventure zone can't be entered.
	AdventureAvailable() bool

	// HighestAutokill is how many titans, counted from the first, are worth
	// waiting for.
	HighestAutokill() int
}

// Predictor decides whether a titan spawn is close enough to gear up for.
type Predictor struct {
	titans    []Titan
	lookahead float64
}

func NewPredictor(opts ...PredictorOpt) *Predictor {
	p := &Predictor{
		titans:    DefaultTitans(),
		lookahead: DefaultLookahead.Seconds(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// IsUrgent returns true if an unlocked titan within the autokill range
// spawns within the lookahead window.
func (p *Predictor) IsUrgent(ctx context.Context, h Host) bool {
	if !h.AdventureAvailable() {
		return false
	}

	cutoff := h.HighestAutokill()
	for i, t := range p.titans {
		if i == cutoff {
			return false
		}
		if !t.Unlocked(h) {
			continue
		}

		delta := math.Abs(h.SpawnInterval(t.Number) - h.SinceSpawn(t.Number))
		if delta < p.lookahead {
			slog.DebugContext(ctx, "titan spawning soon", "titan", t.Number, "seconds", delta)
			return true
		}
	}

	return false
}

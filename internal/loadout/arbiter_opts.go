package loadout

import "time"

type ArbiterOpt func(*Arbiter)

// WithPublisher sends lock events to p
func WithPublisher(p Publisher) ArbiterOpt {
	return func(a *Arbiter) {
		a.pub = p
	}
}

// WithClock sets the time source used to stamp events
func WithClock(now func() time.Time) ArbiterOpt {
	return func(a *Arbiter) {
		a.now = now
	}
}

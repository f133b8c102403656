package titan

import "time"

type PredictorOpt func(*Predictor)

// WithLookahead sets how far ahead of a spawn the predictor reports urgency
func WithLookahead(d time.Duration) PredictorOpt {
	return func(p *Predictor) {
		p.lookahead = d.Seconds()
	}
}

// WithTitans replaces the unlock table
func WithTitans(titans []Titan) PredictorOpt {
	return func(p *Predictor) {
		p.titans = titans
	}
}

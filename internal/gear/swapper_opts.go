package gear

import "github.com/pixil98/go-gearlock/internal/inventory"

type SwapperOpt func(*Swapper)

// WithRanker sets how duplicate bag copies of an item are ordered
func WithRanker(r inventory.Ranker) SwapperOpt {
	return func(s *Swapper) {
		if r != nil {
			s.rank = r
		}
	}
}

package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gearlock/internal/titan"
)

const minTickInterval = 100 * time.Millisecond

type Config struct {
	TickInterval string         `json:"tick_interval"`
	Lookahead    string         `json:"lookahead,omitempty"`
	Loadouts     LoadoutsConfig `json:"loadouts"`
	Sim          SimConfig      `json:"sim"`
	Titans       TitansConfig   `json:"titans,omitempty"`
	Nats         NatsConfig     `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < minTickInterval {
		el.Add(fmt.Errorf("tick_interval must be at least %s", minTickInterval))
	}

	if c.Lookahead != "" {
		d, err := time.ParseDuration(c.Lookahead)
		if err != nil {
			el.Add(fmt.Errorf("parsing lookahead: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("lookahead must be positive"))
		}
	}

	el.Add(c.Loadouts.validate())
	el.Add(c.Sim.validate())
	el.Add(c.Titans.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

func (c *Config) tickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing tick_interval: %w", err)
	}
	return d, nil
}

func (c *Config) buildPredictor() (*titan.Predictor, error) {
	var opts []titan.PredictorOpt
	if c.Lookahead != "" {
		d, err := time.ParseDuration(c.Lookahead)
		if err != nil {
			return nil, fmt.Errorf("parsing lookahead: %w", err)
		}
		opts = append(opts, titan.WithLookahead(d))
	}
	if len(c.Titans) > 0 {
		opts = append(opts, titan.WithTitans(c.Titans))
	}

	return titan.NewPredictor(opts...), nil
}

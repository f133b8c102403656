package command

import (
	"fmt"

	"github.com/pixil98/go-gearlock/internal/driver"
	"github.com/pixil98/go-gearlock/internal/gear"
	"github.com/pixil98/go-gearlock/internal/loadout"
	"github.com/pixil98/go-gearlock/internal/sim"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tick, err := cfg.tickInterval()
	if err != nil {
		return nil, err
	}

	var hostOpts []sim.HostOpt
	if len(cfg.Titans) > 0 {
		hostOpts = append(hostOpts, sim.WithTitans(cfg.Titans))
	}
	host, err := cfg.Sim.BuildHost(hostOpts...)
	if err != nil {
		return nil, err
	}

	loadouts, err := cfg.Loadouts.BuildLoadouts()
	if err != nil {
		return nil, err
	}

	predictor, err := cfg.buildPredictor()
	if err != nil {
		return nil, err
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	publisher, err := cfg.Nats.buildPublisher(natsServer)
	if err != nil {
		return nil, fmt.Errorf("creating event publisher: %w", err)
	}

	arbiter := loadout.NewArbiter(host, gear.NewSwapper(host), predictor, loadouts, loadout.WithPublisher(publisher))
	harvester := loadout.NewHarvester(arbiter, host)

	// The clock advances the simulated game before anything reads it.
	d := driver.NewDriver([]driver.Ticker{
		sim.NewClock(host, tick),
		harvester,
		arbiter,
	}, driver.WithTickLength(tick))

	return service.WorkerList{
		"driver": d,
		"nats":   natsServer,
	}, nil
}

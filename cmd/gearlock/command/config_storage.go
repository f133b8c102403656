package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gearlock/internal/loadout"
	"github.com/pixil98/go-gearlock/internal/sim"
	"github.com/pixil98/go-gearlock/internal/storage"
)

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}

// LoadoutsConfig names the two loadout assets the arbiter switches between.
type LoadoutsConfig struct {
	AssetConfig[*loadout.Spec]
	Titan     string `json:"titan"`
	Yggdrasil string `json:"yggdrasil"`
}

func (c *LoadoutsConfig) validate() error {
	el := errors.NewErrorList()

	el.Add(c.AssetConfig.Validate("loadouts"))
	if c.Titan == "" {
		el.Add(fmt.Errorf("loadouts: titan is required"))
	}
	if c.Yggdrasil == "" {
		el.Add(fmt.Errorf("loadouts: yggdrasil is required"))
	}

	return el.Err()
}

func (c *LoadoutsConfig) BuildLoadouts() (loadout.Loadouts, error) {
	store, err := c.BuildFileStore()
	if err != nil {
		return loadout.Loadouts{}, fmt.Errorf("creating loadout store: %w", err)
	}

	titan, err := lookup[*loadout.Spec](store, c.Titan)
	if err != nil {
		return loadout.Loadouts{}, fmt.Errorf("titan loadout: %w", err)
	}
	ygg, err := lookup[*loadout.Spec](store, c.Yggdrasil)
	if err != nil {
		return loadout.Loadouts{}, fmt.Errorf("yggdrasil loadout: %w", err)
	}

	return loadout.Loadouts{
		Titan:     titan.Items.Clone(),
		Yggdrasil: ygg.Items.Clone(),
	}, nil
}

// SimConfig selects the simulated character the arbiter drives.
type SimConfig struct {
	AssetConfig[*sim.State]
	Character string `json:"character"`
}

func (c *SimConfig) validate() error {
	el := errors.NewErrorList()

	el.Add(c.AssetConfig.Validate("sim"))
	if c.Character == "" {
		el.Add(fmt.Errorf("sim: character is required"))
	}

	return el.Err()
}

func (c *SimConfig) BuildHost(opts ...sim.HostOpt) (*sim.Host, error) {
	store, err := c.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating sim store: %w", err)
	}

	state, err := lookup[*sim.State](store, c.Character)
	if err != nil {
		return nil, fmt.Errorf("sim character: %w", err)
	}

	return sim.NewHost(*state, opts...), nil
}

func lookup[T storage.ValidatingSpec](s storage.Storer[T], id string) (T, error) {
	v, ok := s.Get(storage.Identifier(id))
	if !ok {
		var zero T
		return zero, fmt.Errorf("asset %q not found", id)
	}
	return v, nil
}

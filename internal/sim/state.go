package sim

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gearlock/internal/inventory"
)

// TitanTimer tracks one titan's respawn schedule in seconds.
type TitanTimer struct {
	// Interval is the time between spawns.
	Interval float64 `json:"interval"`

	// Elapsed is the time since the last spawn.
	Elapsed float64 `json:"elapsed"`
}

// Progress is the character progression the titan unlock checks read.
type Progress struct {
	BossId          int         `json:"boss_id"`
	EffectiveBossId int         `json:"effective_boss_id"`
	Achievements    []int       `json:"achievements,omitempty"`
	EnemyKills      map[int]int `json:"enemy_kills,omitempty"`
	TitanKills      map[int]int `json:"titan_kills,omitempty"`
}

// State is a simulated character loaded from asset files.
type State struct {
	Gear     inventory.Snapshot `json:"gear"`
	Progress Progress           `json:"progress"`

	// Titans is indexed by titan number minus one.
	Titans []TitanTimer `json:"titans"`

	AdventureAvailable bool `json:"adventure_available"`
	HighestAutokill    int  `json:"highest_autokill"`

	// FruitInterval is how often yggdrasil fruits ripen, in seconds. Zero disables harvesting.
	FruitInterval float64 `json:"fruit_interval,omitempty"`
	FruitElapsed  float64 `json:"fruit_elapsed,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (s *State) Validate() error {
	el := errors.NewErrorList()

	for i, t := range s.Titans {
		if t.Interval <= 0 {
			el.Add(fmt.Errorf("titan %d: interval must be positive", i+1))
		}
		if t.Elapsed < 0 {
			el.Add(fmt.Errorf("titan %d: elapsed must not be negative", i+1))
		}
	}
	if s.HighestAutokill < 0 {
		el.Add(fmt.Errorf("highest_autokill must not be negative"))
	}
	if s.FruitInterval < 0 {
		el.Add(fmt.Errorf("fruit_interval must not be negative"))
	}
	for i, it := range s.Gear.Bag {
		if it.Id < 0 {
			el.Add(fmt.Errorf("bag slot %d: negative item id", i))
		}
	}

	return el.Err()
}

package loadout

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gearlock/internal/inventory"
)

// Spec is a named loadout loaded from asset files.
type Spec struct {
	// Name is shown in logs.
	Name string `json:"name"`

	// Items are equipped in order. Unowned ids are skipped at swap time.
	Items inventory.Loadout `json:"items"`
}

// Validate satisfies storage.ValidatingSpec
func (s *Spec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("loadout name is required"))
	}
	for i, id := range s.Items {
		if id <= inventory.EmptyItem {
			el.Add(fmt.Errorf("item %d: id must be positive", i))
		}
	}

	return el.Err()
}

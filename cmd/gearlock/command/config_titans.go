package command

import (
	"fmt"

	"github.com/pixil98/go-gearlock/internal/titan"
)

// TitansConfig overrides the built in titan table. Empty keeps the defaults.
type TitansConfig []titan.Titan

func (c TitansConfig) validate() error {
	if len(c) == 0 {
		return nil
	}
	err := titan.ValidateTable(c)
	if err != nil {
		return fmt.Errorf("titans: %w", err)
	}
	return nil
}

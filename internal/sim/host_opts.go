package sim

import "github.com/pixil98/go-gearlock/internal/titan"

type HostOpt func(*Host)

// WithTitans sets the unlock table used to decide which spawns are killed
func WithTitans(titans []titan.Titan) HostOpt {
	return func(h *Host) {
		h.titans = titans
	}
}

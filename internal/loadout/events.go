package loadout

import (
	"time"

	"github.com/pixil98/go-gearlock/internal/inventory"
)

type EventKind string

const (
	EventAcquired EventKind = "acquired"
	EventReleased EventKind = "released"
	EventRejected EventKind = "rejected"
)

// Event describes a lock transition. Acquire and release of the same hold
// share a HoldId.
type Event struct {
	HoldId   string            `json:"hold_id"`
	Kind     EventKind         `json:"kind"`
	Lock     LockState         `json:"lock"`
	Previous LockState         `json:"previous"`
	Items    inventory.Loadout `json:"items,omitempty"`
	Time     time.Time         `json:"time"`
}

// Publisher receives lock events.
type Publisher interface {
	Publish(Event) error
}

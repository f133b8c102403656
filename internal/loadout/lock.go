package loadout

import "fmt"

// LockState records which goal currently owns the character's gear.
type LockState int

const (
	LockNone LockState = iota
	LockTitan
	LockYggdrasil
)

func (l LockState) String() string {
	switch l {
	case LockNone:
		return "none"
	case LockTitan:
		return "titan"
	case LockYggdrasil:
		return "yggdrasil"
	default:
		return fmt.Sprintf("lock(%d)", int(l))
	}
}

func (l LockState) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

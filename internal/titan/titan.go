package titan

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Count is the number of titans in the adventure zone.
const Count = 12

// ProgressKind selects which boss counter an unlock threshold applies to.
type ProgressKind int

const (
	ProgressBoss ProgressKind = iota
	ProgressEffectiveBoss
)

func (k *ProgressKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "boss":
		*k = ProgressBoss
	case "effective_boss":
		*k = ProgressEffectiveBoss
	default:
		return fmt.Errorf("unknown progress kind: %s", text)
	}
	return nil
}

// FlagKind selects which one-time flag can unlock a titan early.
type FlagKind int

const (
	FlagNone FlagKind = iota
	FlagAchievement
	FlagEnemyKill
	FlagTitanKill
)

func (k *FlagKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "none":
		*k = FlagNone
	case "achievement":
		*k = FlagAchievement
	case "enemy_kill":
		*k = FlagEnemyKill
	case "titan_kill":
		*k = FlagTitanKill
	default:
		return fmt.Errorf("unknown flag kind: %s", text)
	}
	return nil
}

// Titan is one entry of the spawn table.
type Titan struct {
	// Number is the titan's 1-based position in the adventure zone.
	Number int `json:"number"`

	// Progress and Threshold unlock the titan once the boss counter reaches Threshold.
	Progress  ProgressKind `json:"progress"`
	Threshold int          `json:"threshold"`

	// Flag and FlagIndex unlock the titan regardless of boss progress.
	Flag      FlagKind `json:"flag"`
	FlagIndex int      `json:"flag_index"`
}

func (t *Titan) Validate() error {
	el := errors.NewErrorList()

	if t.Number < 1 || t.Number > Count {
		el.Add(fmt.Errorf("number must be between 1 and %d", Count))
	}
	if t.Threshold < 0 {
		el.Add(fmt.Errorf("threshold must not be negative"))
	}
	if t.Flag != FlagNone && t.FlagIndex < 0 {
		el.Add(fmt.Errorf("flag_index must not be negative"))
	}

	return el.Err()
}

// Unlocked returns true if the titan is available to fight.
func (t *Titan) Unlocked(p Progress) bool {
	reached := p.BossId()
	if t.Progress == ProgressEffectiveBoss {
		reached = p.EffectiveBossId()
	}
	if reached >= t.Threshold {
		return true
	}

	switch t.Flag {
	case FlagAchievement:
		return p.AchievementComplete(t.FlagIndex)
	case FlagEnemyKill:
		return p.EnemyKills(t.FlagIndex) > 0
	case FlagTitanKill:
		return p.TitanKills(t.FlagIndex) >= 1
	default:
		return false
	}
}

// DefaultTitans returns the stock unlock table.
func DefaultTitans() []Titan {
	return []Titan{
		{Number: 1, Progress: ProgressBoss, Threshold: 58, Flag: FlagAchievement, FlagIndex: 128},
		{Number: 2, Progress: ProgressBoss, Threshold: 66, Flag: FlagAchievement, FlagIndex: 129},
		{Number: 3, Progress: ProgressBoss, Threshold: 82, Flag: FlagEnemyKill, FlagIndex: 304},
		{Number: 4, Progress: ProgressBoss, Threshold: 100, Flag: FlagAchievement, FlagIndex: 130},
		{Number: 5, Progress: ProgressBoss, Threshold: 116, Flag: FlagAchievement, FlagIndex: 145},
		{Number: 6, Progress: ProgressBoss, Threshold: 132, Flag: FlagTitanKill, FlagIndex: 6},
		{Number: 7, Progress: ProgressEffectiveBoss, Threshold: 426, Flag: FlagTitanKill, FlagIndex: 7},
		{Number: 8, Progress: ProgressEffectiveBoss, Threshold: 467, Flag: FlagTitanKill, FlagIndex: 8},
		{Number: 9, Progress: ProgressEffectiveBoss, Threshold: 491, Flag: FlagTitanKill, FlagIndex: 9},
		{Number: 10, Progress: ProgressEffectiveBoss, Threshold: 727, Flag: FlagTitanKill, FlagIndex: 10},
		{Number: 11, Progress: ProgressEffectiveBoss, Threshold: 826, Flag: FlagTitanKill, FlagIndex: 11},
		{Number: 12, Progress: ProgressEffectiveBoss, Threshold: 848, Flag: FlagTitanKill, FlagIndex: 12},
	}
}

// ValidateTable checks a full spawn table.
func ValidateTable(titans []Titan) error {
	el := errors.NewErrorList()

	if len(titans) != Count {
		el.Add(fmt.Errorf("expected %d titans, got %d", Count, len(titans)))
	}
	for i := range titans {
		if err := titans[i].Validate(); err != nil {
			el.Add(fmt.Errorf("titan %d: %w", i+1, err))
			continue
		}
		if titans[i].Number != i+1 {
			el.Add(fmt.Errorf("titan %d: out of order (number %d)", i+1, titans[i].Number))
		}
	}

	return el.Err()
}

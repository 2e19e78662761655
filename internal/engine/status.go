package engine

import "github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"

const (
	minSleepTurns = 1
	maxSleepTurns = 4

	poisonPercent = 5
	burnPercent   = 10
)

// TurnStartResult is what the status check at the start of a turn did.
type TurnStartResult struct {
	CanAct bool
	// Status is the status the creature had when the check began.
	Status game.Status
	Woke   bool
	// PeriodicDamage is the poison or burn damage dealt by this check.
	PeriodicDamage int
}

// StatusEngine owns every status transition of a creature.
type StatusEngine struct {
	rng Roller
}

func NewStatusEngine(rng Roller) *StatusEngine {
	return &StatusEngine{rng: rng}
}

// Apply sets effect on c if c currently has no status. It reports whether the
// status was applied; existing statuses never stack or get replaced.
func (se *StatusEngine) Apply(c *game.Creature, effect game.Status) bool {
	if c == nil || effect == game.StatusNone || c.Status != game.StatusNone {
		return false
	}
	c.Status = effect
	if effect == game.StatusAsleep {
		c.SleepTurns = rollRange(se.rng, minSleepTurns, maxSleepTurns)
	}
	return true
}

// CanAct runs the turn-start check and reports whether c may act this turn.
func (se *StatusEngine) CanAct(c *game.Creature) bool {
	return se.TurnStart(c).CanAct
}

// TurnStart runs the turn-start status check: sleep countdown, paralysis coin
// flip, or poison/burn damage.
func (se *StatusEngine) TurnStart(c *game.Creature) TurnStartResult {
	if c == nil {
		return TurnStartResult{}
	}
	res := TurnStartResult{Status: c.Status}
	switch c.Status {
	case game.StatusAsleep:
		// The sleep check consumes the turn, including the turn it wakes up.
		c.SleepTurns--
		if c.SleepTurns <= 0 {
			se.Clear(c)
			res.Woke = true
		}
	case game.StatusParalyzed:
		res.CanAct = se.rng.Intn(2) == 0
	case game.StatusPoisoned, game.StatusBurned:
		res.PeriodicDamage = se.tick(c)
		res.CanAct = true
	default:
		res.CanAct = true
	}
	return res
}

// PeriodicDamage returns the poison or burn damage c takes per turn.
func PeriodicDamage(c *game.Creature) int {
	switch c.Status {
	case game.StatusPoisoned:
		return c.MaxHealth * poisonPercent / 100
	case game.StatusBurned:
		return c.MaxHealth * burnPercent / 100
	}
	return 0
}

func (se *StatusEngine) tick(c *game.Creature) int {
	dmg := PeriodicDamage(c)
	if dmg > c.Health {
		dmg = c.Health
	}
	c.SetHealth(c.Health - dmg)
	return dmg
}

// Clear resets c to no status and zeroes status counters.
func (se *StatusEngine) Clear(c *game.Creature) {
	if c == nil {
		return
	}
	c.Status = game.StatusNone
	c.SleepTurns = 0
}

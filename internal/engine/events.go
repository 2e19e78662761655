package engine

import (
	"fmt"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

type EventKind string

const (
	EventTurnStart       EventKind = "turn_start"
	EventSleeping        EventKind = "sleeping"
	EventWoke            EventKind = "woke"
	EventFullyParalyzed  EventKind = "fully_paralyzed"
	EventPeriodicDamage  EventKind = "periodic_damage"
	EventMiss            EventKind = "miss"
	EventCritical        EventKind = "critical"
	EventEffectiveness   EventKind = "effectiveness"
	EventDamage          EventKind = "damage"
	EventStatusInflicted EventKind = "status_inflicted"
	EventItemUsed        EventKind = "item_used"
	EventSwitched        EventKind = "switched"
	EventFainted         EventKind = "fainted"
	EventForcedSwitch    EventKind = "forced_switch"
	EventChoiceRejected  EventKind = "choice_rejected"
	EventWinner          EventKind = "winner"
	EventDraw            EventKind = "draw"
)

// Event is one outcome reported to the presentation sink. Only the fields
// meaningful for Kind are set.
type Event struct {
	Kind     EventKind
	Turn     int
	Player   string
	Creature string
	// Target is the creature on the receiving end of an attack or item.
	Target string
	Attack string
	Damage int
	// Health is the health of the affected creature after the event.
	Health int
	Tier   Tier
	Status game.Status
	Item   string
	Err    error
}

// Describe renders e as a single human readable line.
func Describe(e Event) string {
	switch e.Kind {
	case EventTurnStart:
		return fmt.Sprintf("Turn %d: %s sends %s.", e.Turn, e.Player, e.Creature)
	case EventSleeping:
		return fmt.Sprintf("%s is fast asleep.", e.Creature)
	case EventWoke:
		return fmt.Sprintf("%s woke up but lost the turn.", e.Creature)
	case EventFullyParalyzed:
		return fmt.Sprintf("%s is paralyzed and cannot move.", e.Creature)
	case EventPeriodicDamage:
		return fmt.Sprintf("%s is hurt by %s and loses %d HP (%d left).", e.Creature, statusCause(e.Status), e.Damage, e.Health)
	case EventMiss:
		return fmt.Sprintf("%s used %s but missed.", e.Creature, e.Attack)
	case EventCritical:
		return "A critical hit!"
	case EventEffectiveness:
		return tierMessage(e.Tier)
	case EventDamage:
		return fmt.Sprintf("%s used %s on %s for %d damage (%d HP left).", e.Creature, e.Attack, e.Target, e.Damage, e.Health)
	case EventStatusInflicted:
		return fmt.Sprintf("%s is now %s.", e.Target, e.Status)
	case EventItemUsed:
		return fmt.Sprintf("%s used %s on %s (%d HP).", e.Player, e.Item, e.Target, e.Health)
	case EventSwitched:
		return fmt.Sprintf("%s switched to %s.", e.Player, e.Creature)
	case EventFainted:
		return fmt.Sprintf("%s's %s fainted.", e.Player, e.Creature)
	case EventForcedSwitch:
		return fmt.Sprintf("%s sends out %s.", e.Player, e.Creature)
	case EventChoiceRejected:
		return fmt.Sprintf("Invalid choice for %s: %v.", e.Player, e.Err)
	case EventWinner:
		return fmt.Sprintf("%s wins the battle after %d turns!", e.Player, e.Turn)
	case EventDraw:
		return fmt.Sprintf("Both sides are out of creatures after %d turns. It's a draw.", e.Turn)
	}
	return string(e.Kind)
}

func statusCause(s game.Status) string {
	switch s {
	case game.StatusPoisoned:
		return "poison"
	case game.StatusBurned:
		return "its burn"
	}
	return s.String()
}

func tierMessage(t Tier) string {
	switch t {
	case TierNoEffect:
		return "It has no effect."
	case TierNotVeryEffective:
		return "It's not very effective."
	case TierSuperEffective:
		return "It's super effective!"
	}
	return ""
}

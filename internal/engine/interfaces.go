package engine

import "github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"

// Roller is the source of every random draw in a match. *rand.Rand satisfies
// it; tests inject scripted rollers.
type Roller interface {
	Intn(n int) int
}

// rollRange draws uniformly in [lo, hi].
func rollRange(r Roller, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

type ActionKind string

const (
	ActionAttack  ActionKind = "attack"
	ActionUseItem ActionKind = "use_item"
	ActionSwitch  ActionKind = "switch"
)

// ChoiceSource is asked for every decision a player makes. Calls block until
// the player answers. A non-nil error means the source itself failed (for
// example its input was closed) and aborts the match loop.
type ChoiceSource interface {
	SelectAction(p *game.Player) (ActionKind, error)
	// SelectAttackIndex returns an index into the selected creature's attacks.
	SelectAttackIndex(p *game.Player) (int, error)
	// SelectRosterIndex returns an index into p.Roster. excludeFainted is set
	// when the answer must be a creature able to battle.
	SelectRosterIndex(p *game.Player, excludeFainted bool) (int, error)
	SelectInventorySlot(p *game.Player) (int, error)
	// SelectFaintedIndex returns an index into p.Fainted for revive targets.
	SelectFaintedIndex(p *game.Player) (int, error)
}

// PresentationSink is told about outcomes. It is never queried.
type PresentationSink interface {
	Notify(e Event)
}

// SinkFunc adapts a function to PresentationSink.
type SinkFunc func(e Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// MultiSink fans events out to every sink in order.
type MultiSink []PresentationSink

func (ms MultiSink) Notify(e Event) {
	for _, s := range ms {
		if s != nil {
			s.Notify(e)
		}
	}
}

type discardSink struct{}

func (discardSink) Notify(Event) {}

// Catalog provides templates at roster-build time, before the engine starts.
type Catalog interface {
	GetCreatureTemplate(id uint) (game.Creature, error)
	GetAttackSet(element game.Element) ([game.MaxAttacks]game.Attack, error)
}

package engine

import (
	"fmt"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// settleAll runs the forced-switch cascade for both sides, opponent first.
func (tc *turnContext) settleAll() error {
	if err := tc.settle(tc.opponent); err != nil {
		return err
	}
	return tc.settle(tc.player)
}

// settle benches p's selected creature once it has fainted and keeps asking
// p for a replacement until a living creature is selected or p has nothing
// left to send out.
func (tc *turnContext) settle(p *game.Player) error {
	for {
		c := p.Selected
		if c != nil && !c.Fainted() {
			return nil
		}
		if c != nil {
			if p.Bench(c) {
				tc.emit(Event{Kind: EventFainted, Player: p.Name, Creature: c.Name})
			}
			p.Selected = nil
		}
		if len(p.Roster) == 0 && !canRevive(p) {
			return nil
		}
		if err := tc.forceSwitch(p); err != nil {
			return err
		}
	}
}

// forceSwitch makes one attempt at bringing in a replacement. When the roster
// is empty the player gets a last chance to revive a fainted creature.
func (tc *turnContext) forceSwitch(p *game.Player) error {
	if len(p.Roster) == 0 {
		return tc.lastChanceRevive(p)
	}
	i, err := tc.choices().SelectRosterIndex(p, true)
	if err != nil {
		return fromSource(err)
	}
	if err := tc.selectReplacement(p, i); err != nil {
		tc.reject(p, err)
	}
	return nil
}

func (tc *turnContext) selectReplacement(p *game.Player, i int) error {
	if !inRange(i, len(p.Roster)) {
		return fmt.Errorf("%w: roster %d", ErrIndexOutOfRange, i)
	}
	c := p.Roster[i]
	if c.Fainted() {
		return fmt.Errorf("%w: %s", ErrTargetFainted, c.Name)
	}
	p.Selected = c
	tc.emit(Event{Kind: EventForcedSwitch, Player: p.Name, Creature: c.Name, Health: c.Health})
	return nil
}

func canRevive(p *game.Player) bool {
	return len(p.Fainted) > 0 && p.SlotOf(game.Revive) >= 0
}

func (tc *turnContext) lastChanceRevive(p *game.Player) error {
	slot := p.SlotOf(game.Revive)
	i, err := tc.choices().SelectFaintedIndex(p)
	if err != nil {
		return fromSource(err)
	}
	var c *game.Creature
	if inRange(i, len(p.Fainted)) {
		c = p.Fainted[i]
	}
	item, err := tc.c.items.Use(p, slot, i)
	if err != nil {
		if IsPrecondition(err) {
			tc.reject(p, err)
			return nil
		}
		return err
	}
	tc.emitItemUsed(p, item, c)
	tc.emit(Event{Kind: EventForcedSwitch, Player: p.Name, Creature: c.Name, Health: c.Health})
	return nil
}

// checkWinner ends the match when a side has no creature left. Both sides
// exhausted at once is a draw.
func (tc *turnContext) checkWinner() bool {
	m := tc.c.match
	alive0 := m.Players[0].HasUsableCreatures()
	alive1 := m.Players[1].HasUsableCreatures()
	switch {
	case alive0 && alive1:
		return false
	case !alive0 && !alive1:
		m.Winner = nil
	case alive0:
		m.Winner = m.Players[0]
	default:
		m.Winner = m.Players[1]
	}
	m.Phase = game.PhaseMatchOver
	if m.Winner == nil {
		tc.emit(Event{Kind: EventDraw})
	} else {
		tc.emit(Event{Kind: EventWinner, Player: m.Winner.Name})
	}
	return true
}

// finalizeTurn checks the win condition and otherwise hands the turn to the
// other side.
func (tc *turnContext) finalizeTurn() {
	m := tc.c.match
	m.Phase = game.PhaseTurnEnd
	if tc.checkWinner() {
		return
	}
	m.Active = 1 - m.Active
	m.Phase = game.PhaseTurnStart
}

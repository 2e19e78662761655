package engine

import (
	"fmt"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// actionHandlers maps each action kind to its executor.
var actionHandlers = map[ActionKind]func(tc *turnContext) error{
	ActionAttack:  (*turnContext).execAttack,
	ActionUseItem: (*turnContext).execUseItem,
	ActionSwitch:  (*turnContext).execSwitch,
}

// act asks the active player for an action and runs exactly one that
// succeeds. Invalid choices are reported and asked again.
func (tc *turnContext) act() error {
	p := tc.player
	for {
		kind, err := tc.choices().SelectAction(p)
		if err != nil {
			return fromSource(err)
		}
		err = tc.runAction(kind)
		switch {
		case err == nil:
			return nil
		case isSourceError(err):
			return err
		case IsPrecondition(err):
			tc.reject(p, err)
		default:
			return err
		}
	}
}

func (tc *turnContext) runAction(kind ActionKind) error {
	exec, ok := actionHandlers[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, kind)
	}
	return exec(tc)
}

// ValidActions lists the actions p can currently take.
func ValidActions(p *game.Player) []ActionKind {
	if p == nil || p.Selected == nil {
		return nil
	}
	out := make([]ActionKind, 0, 3)
	if len(p.Selected.Attacks) > 0 {
		out = append(out, ActionAttack)
	}
	if p.ItemCount() > 0 {
		out = append(out, ActionUseItem)
	}
	if len(p.Roster) > 1 {
		out = append(out, ActionSwitch)
	}
	return out
}

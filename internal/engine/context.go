package engine

import "github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"

// --- Turn context ------------------------------------------------------
type turnContext struct {
	c        *Controller
	turn     int
	player   *game.Player
	opponent *game.Player
}

func (c *Controller) newTurnContext() *turnContext {
	return &turnContext{
		c:        c,
		turn:     c.match.Turn,
		player:   c.match.ActivePlayer(),
		opponent: c.match.OpposingPlayer(),
	}
}

func (tc *turnContext) emit(e Event) {
	e.Turn = tc.turn
	tc.c.sink.Notify(e)
}

// reject reports a precondition error so the player can choose again.
func (tc *turnContext) reject(p *game.Player, err error) {
	tc.emit(Event{Kind: EventChoiceRejected, Player: p.Name, Err: err})
}

func (tc *turnContext) choices() ChoiceSource { return tc.c.choices }

package engine

import (
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// Result is the terminal outcome of a match.
type Result struct {
	// Winner is nil on a draw.
	Winner *game.Player
	Draw   bool
	Turns  int
}

// Controller drives the turn state machine of one match. It is not safe for
// concurrent use; collaborators are called synchronously and may block.
type Controller struct {
	match   *game.Match
	choices ChoiceSource
	sink    PresentationSink

	status *StatusEngine
	damage *DamageCalculator
	items  *InventoryManager
}

// NewController wires the engine components around m. A nil sink discards
// events. On a fresh match the side that moves first is drawn from rng.
func NewController(m *game.Match, choices ChoiceSource, sink PresentationSink, rng Roller) (*Controller, error) {
	if m == nil || choices == nil || rng == nil {
		return nil, ErrNilArgument
	}
	if m.Players[0] == nil || m.Players[1] == nil {
		return nil, ErrNilArgument
	}
	if sink == nil {
		sink = discardSink{}
	}
	status := NewStatusEngine(rng)
	c := &Controller{
		match:   m,
		choices: choices,
		sink:    sink,
		status:  status,
		damage:  NewDamageCalculator(rng, status),
		items:   NewInventoryManager(status),
	}
	if m.Turn == 0 {
		m.Active = rng.Intn(2)
	}
	if m.Phase == "" {
		m.Phase = game.PhaseTurnStart
	}
	return c, nil
}

func (c *Controller) Match() *game.Match { return c.match }

// PlayTurn runs one full turn for the active player: status check, forced
// switch or one action, the forced-switch cascade and the win check.
func (c *Controller) PlayTurn() error {
	m := c.match
	if m.Over() {
		return ErrMatchOver
	}
	m.Turn++
	m.Phase = game.PhaseTurnStart
	tc := c.newTurnContext()
	if err := tc.resolve(); err != nil {
		return err
	}
	tc.finalizeTurn()
	return nil
}

func (tc *turnContext) resolve() error {
	p := tc.player
	cr := p.Selected
	if cr == nil {
		// Bringing in a replacement uses up the turn.
		return tc.settleAll()
	}
	tc.emit(Event{Kind: EventTurnStart, Player: p.Name, Creature: cr.Name, Health: cr.Health, Status: cr.Status})

	res := tc.c.status.TurnStart(cr)
	tc.reportTurnStart(p, cr, res)
	if cr.Fainted() || !res.CanAct {
		return tc.settleAll()
	}
	if err := tc.act(); err != nil {
		return err
	}
	return tc.settleAll()
}

func (tc *turnContext) reportTurnStart(p *game.Player, cr *game.Creature, res TurnStartResult) {
	base := Event{Player: p.Name, Creature: cr.Name, Health: cr.Health, Status: res.Status}
	switch {
	case res.Woke:
		base.Kind = EventWoke
	case res.Status == game.StatusAsleep:
		base.Kind = EventSleeping
	case res.Status == game.StatusParalyzed && !res.CanAct:
		base.Kind = EventFullyParalyzed
	case res.PeriodicDamage > 0:
		base.Kind = EventPeriodicDamage
		base.Damage = res.PeriodicDamage
	default:
		return
	}
	tc.emit(base)
}

// Run settles both sides, then plays turns until the match is over. A
// ChoiceSource failure stops the loop and is returned with the partial result.
func (c *Controller) Run() (Result, error) {
	tc := c.newTurnContext()
	if err := tc.settleAll(); err != nil {
		return c.result(), err
	}
	if !c.match.Over() {
		tc.checkWinner()
	}
	for !c.match.Over() {
		if err := c.PlayTurn(); err != nil {
			return c.result(), err
		}
	}
	return c.result(), nil
}

func (c *Controller) result() Result {
	m := c.match
	return Result{Winner: m.Winner, Draw: m.Over() && m.Winner == nil, Turns: m.Turn}
}

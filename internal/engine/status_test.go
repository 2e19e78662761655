package engine

import (
	"testing"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

func TestStatusApply_Idempotent(t *testing.T) {
	se := NewStatusEngine(roll(1))
	c := newCreature("Snorlax", game.Normal, 100, 0)
	if !se.Apply(c, game.StatusAsleep) {
		t.Fatalf("expected sleep to apply")
	}
	if c.SleepTurns != 2 {
		t.Fatalf("expected 2 sleep turns, got %d", c.SleepTurns)
	}
	if se.Apply(c, game.StatusBurned) {
		t.Fatalf("burn must not apply over sleep")
	}
	if c.Status != game.StatusAsleep || c.SleepTurns != 2 {
		t.Fatalf("expected creature to stay asleep for 2 turns, got %s/%d", c.Status, c.SleepTurns)
	}
	if se.Apply(c, game.StatusNone) {
		t.Fatalf("applying none must be a no-op")
	}
}

func TestStatusTurnStart_PeriodicDamage(t *testing.T) {
	cases := []struct {
		status    game.Status
		maxHealth int
		health    int
		want      int
	}{
		{game.StatusPoisoned, 100, 100, 95},
		{game.StatusBurned, 100, 100, 90},
		{game.StatusPoisoned, 30, 30, 29},
		{game.StatusBurned, 100, 4, 0},
	}
	for _, tc := range cases {
		se := NewStatusEngine(roll())
		c := newCreature("Target", game.Normal, tc.health, 0)
		c.MaxHealth = tc.maxHealth
		c.Status = tc.status
		if !se.CanAct(c) {
			t.Fatalf("%s: creature must be able to act", tc.status)
		}
		if c.Health != tc.want {
			t.Fatalf("%s: expected health %d, got %d", tc.status, tc.want, c.Health)
		}
		if c.Status != tc.status {
			t.Fatalf("%s: periodic status must persist, got %s", tc.status, c.Status)
		}
	}
}

func TestStatusTurnStart_SleepConsumesTurns(t *testing.T) {
	se := NewStatusEngine(roll())
	c := newCreature("Jigglypuff", game.Fairy, 100, 0)
	c.Status = game.StatusAsleep
	c.SleepTurns = 2

	res := se.TurnStart(c)
	if res.CanAct || res.Woke || c.SleepTurns != 1 {
		t.Fatalf("first check: expected sleeping with 1 turn left, got %+v / %d", res, c.SleepTurns)
	}
	res = se.TurnStart(c)
	if res.CanAct {
		t.Fatalf("the waking turn is still consumed")
	}
	if !res.Woke || c.Status != game.StatusNone || c.SleepTurns != 0 {
		t.Fatalf("expected creature to wake up, got %+v / %s", res, c.Status)
	}
	if !se.CanAct(c) {
		t.Fatalf("awake creature must act")
	}
}

func TestStatusTurnStart_ParalysisCoinFlip(t *testing.T) {
	se := NewStatusEngine(roll(0, 1))
	c := newCreature("Pikachu", game.Electric, 100, 0)
	c.Status = game.StatusParalyzed
	if !se.CanAct(c) {
		t.Fatalf("expected first flip to allow acting")
	}
	if se.CanAct(c) {
		t.Fatalf("expected second flip to block acting")
	}
	if c.Status != game.StatusParalyzed {
		t.Fatalf("paralysis must persist, got %s", c.Status)
	}
}

func TestStatusClear(t *testing.T) {
	se := NewStatusEngine(roll())
	c := newCreature("Target", game.Normal, 100, 0)
	c.Status = game.StatusAsleep
	c.SleepTurns = 3
	se.Clear(c)
	if c.Status != game.StatusNone || c.SleepTurns != 0 {
		t.Fatalf("expected cleared status, got %s/%d", c.Status, c.SleepTurns)
	}
	se.Clear(c)
	se.Clear(nil)
}

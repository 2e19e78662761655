package engine

import (
	"errors"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// scriptedRoller returns vals in order, then the highest face of every draw.
type scriptedRoller struct {
	vals  []int
	calls int
}

func roll(vals ...int) *scriptedRoller { return &scriptedRoller{vals: vals} }

func (r *scriptedRoller) Intn(n int) int {
	r.calls++
	if len(r.vals) == 0 {
		return n - 1
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

var errScriptExhausted = errors.New("script exhausted")

type script struct {
	actions []ActionKind
	attacks []int
	roster  []int
	slots   []int
	fainted []int
	// excludeFainted records the flag of every SelectRosterIndex call.
	excludeFainted []bool
}

// scriptedChoices answers prompts from a per-player script and fails once a
// script runs out.
type scriptedChoices map[*game.Player]*script

func pop(list *[]int) (int, error) {
	if len(*list) == 0 {
		return 0, errScriptExhausted
	}
	v := (*list)[0]
	*list = (*list)[1:]
	return v, nil
}

func (sc scriptedChoices) of(p *game.Player) *script {
	s, ok := sc[p]
	if !ok {
		s = &script{}
		sc[p] = s
	}
	return s
}

func (sc scriptedChoices) SelectAction(p *game.Player) (ActionKind, error) {
	s := sc.of(p)
	if len(s.actions) == 0 {
		return "", errScriptExhausted
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (sc scriptedChoices) SelectAttackIndex(p *game.Player) (int, error) {
	return pop(&sc.of(p).attacks)
}

func (sc scriptedChoices) SelectRosterIndex(p *game.Player, excludeFainted bool) (int, error) {
	s := sc.of(p)
	s.excludeFainted = append(s.excludeFainted, excludeFainted)
	return pop(&s.roster)
}

func (sc scriptedChoices) SelectInventorySlot(p *game.Player) (int, error) {
	return pop(&sc.of(p).slots)
}

func (sc scriptedChoices) SelectFaintedIndex(p *game.Player) (int, error) {
	return pop(&sc.of(p).fainted)
}

func newCreature(name string, el game.Element, health, defense int, attacks ...game.Attack) *game.Creature {
	return &game.Creature{
		Name:      name,
		Health:    health,
		MaxHealth: game.DefaultMaxHealth,
		Defense:   defense,
		Element:   el,
		Attacks:   attacks,
	}
}

func tackle(power int) game.Attack {
	return game.Attack{Name: "Tackle", Power: power, Element: game.Normal, Accuracy: 100}
}

func countKind(kinds []EventKind, k EventKind) int {
	n := 0
	for _, x := range kinds {
		if x == k {
			n++
		}
	}
	return n
}

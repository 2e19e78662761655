package engine

import (
	"errors"
	"testing"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

func TestResolveAttack_FireIntoWater(t *testing.T) {
	attacker := newCreature("Charmander", game.Fire, 100, 0)
	defender := newCreature("Squirtle", game.Water, 100, 10)
	ember := game.Attack{Name: "Flamethrower", Power: 90, Element: game.Fire, Accuracy: 100}

	// accuracy roll 1, critical roll 6
	dc := NewDamageCalculator(roll(0, 5), NewStatusEngine(roll()))
	out, err := dc.ResolveAttack(attacker, &ember, defender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Hit || out.Critical {
		t.Fatalf("expected a plain hit, got %+v", out)
	}
	if out.Damage != 35 {
		t.Fatalf("expected 35 damage, got %d", out.Damage)
	}
	if defender.Health != 65 {
		t.Fatalf("expected defender health 65, got %d", defender.Health)
	}
	if out.Tier != TierNotVeryEffective {
		t.Fatalf("expected not very effective, got %s", out.Tier)
	}
}

func TestResolveAttack_HealthNeverNegative(t *testing.T) {
	attacker := newCreature("Mew", game.Psychic, 100, 0)
	defender := newCreature("Rattata", game.Normal, 10, 0)
	big := game.Attack{Name: "Hyper Beam", Power: 1000, Element: game.Normal, Accuracy: 100}

	dc := NewDamageCalculator(roll(0, 5), NewStatusEngine(roll()))
	out, err := dc.ResolveAttack(attacker, &big, defender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Damage != 1000 {
		t.Fatalf("expected 1000 damage, got %d", out.Damage)
	}
	if defender.Health != 0 {
		t.Fatalf("expected health 0, got %d", defender.Health)
	}
}

func TestResolveAttack_MissChangesNothing(t *testing.T) {
	attacker := newCreature("Onix", game.Rock, 100, 0)
	defender := newCreature("Pidgey", game.Flying, 100, 0)
	slam := game.Attack{Name: "Rock Slide", Power: 75, Element: game.Rock, Accuracy: 50, Inflicts: game.StatusParalyzed}

	r := roll(99) // accuracy roll 100
	dc := NewDamageCalculator(r, NewStatusEngine(r))
	out, err := dc.ResolveAttack(attacker, &slam, defender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Hit {
		t.Fatalf("expected a miss, got %+v", out)
	}
	if defender.Health != 100 || defender.Status != game.StatusNone {
		t.Fatalf("miss must not change the defender: %+v", defender)
	}
	if r.calls != 1 {
		t.Fatalf("expected a single draw on a miss, got %d", r.calls)
	}
}

func TestResolveAttack_CriticalAndStatus(t *testing.T) {
	attacker := newCreature("Ponyta", game.Fire, 100, 0)
	defender := newCreature("Rattata", game.Normal, 100, 0)
	burn := game.Attack{Name: "Fire Fang", Power: 50, Element: game.Fire, Accuracy: 100, Inflicts: game.StatusBurned}

	dc := NewDamageCalculator(roll(0, 0), NewStatusEngine(roll()))
	out, err := dc.ResolveAttack(attacker, &burn, defender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Critical || out.Damage != 60 {
		t.Fatalf("expected a 60 damage critical, got %+v", out)
	}
	if out.Inflicted != game.StatusBurned || defender.Status != game.StatusBurned {
		t.Fatalf("expected burn to be inflicted, got %+v / %s", out, defender.Status)
	}
}

func TestResolveAttack_StatusDoesNotReplaceExisting(t *testing.T) {
	attacker := newCreature("Ponyta", game.Fire, 100, 0)
	defender := newCreature("Snorlax", game.Normal, 100, 0)
	defender.Status = game.StatusAsleep
	defender.SleepTurns = 2
	burn := game.Attack{Name: "Fire Fang", Power: 10, Element: game.Fire, Accuracy: 100, Inflicts: game.StatusBurned}

	dc := NewDamageCalculator(roll(0, 5), NewStatusEngine(roll()))
	out, err := dc.ResolveAttack(attacker, &burn, defender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Inflicted != game.StatusNone || defender.Status != game.StatusAsleep {
		t.Fatalf("expected defender to stay asleep, got %+v / %s", out, defender.Status)
	}
}

func TestResolveAttack_NilArguments(t *testing.T) {
	c := newCreature("A", game.Normal, 100, 0)
	atk := tackle(10)
	dc := NewDamageCalculator(roll(), NewStatusEngine(roll()))
	if _, err := dc.ResolveAttack(nil, &atk, c); !errors.Is(err, ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
	if _, err := dc.ResolveAttack(c, nil, c); !errors.Is(err, ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
	if _, err := dc.ResolveAttack(c, &atk, nil); !errors.Is(err, ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
}

func TestDamage(t *testing.T) {
	cases := []struct {
		name       string
		power      int
		multiplier float64
		critical   bool
		defense    int
		want       int
	}{
		{"neutral", 40, 1, false, 0, 40},
		{"half truncates", 45, 0.5, false, 0, 22},
		{"half critical", 45, 0.5, true, 0, 27},
		{"critical truncates", 35, 1, true, 0, 42},
		{"double", 30, 2, false, 5, 55},
		{"immune", 120, 0, true, 0, 0},
		{"defense floors at zero", 10, 2, false, 50, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Damage(tc.power, tc.multiplier, tc.critical, tc.defense); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

package engine

import (
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

const (
	// criticalRollSides is the die drawn for critical hits; rolling
	// criticalRollHit on it (10% chance) marks a critical.
	criticalRollSides = 10
	criticalRollHit   = 1
	// The critical bonus is 1.2, kept as a ratio so truncation is exact.
	criticalBonusNum = 6
	criticalBonusDen = 5
)

// Outcome describes the result of one attack.
type Outcome struct {
	Hit        bool
	Critical   bool
	Damage     int
	Multiplier float64
	Tier       Tier
	// Inflicted is the status applied by this attack, StatusNone if none.
	Inflicted game.Status
}

// DamageCalculator resolves attacks between two creatures.
type DamageCalculator struct {
	rng    Roller
	status *StatusEngine
}

func NewDamageCalculator(rng Roller, status *StatusEngine) *DamageCalculator {
	return &DamageCalculator{rng: rng, status: status}
}

// ResolveAttack rolls accuracy and critical hit, applies effectiveness and
// defense, lowers the defender's health and finally tries to inflict the
// attack's status. A miss changes nothing.
func (dc *DamageCalculator) ResolveAttack(attacker *game.Creature, attack *game.Attack, defender *game.Creature) (Outcome, error) {
	if attacker == nil || attack == nil || defender == nil {
		return Outcome{}, ErrNilArgument
	}

	if roll := rollRange(dc.rng, 1, 100); roll > attack.Accuracy {
		return Outcome{}, nil
	}
	out := Outcome{Hit: true}
	out.Critical = rollRange(dc.rng, 1, criticalRollSides) == criticalRollHit

	out.Multiplier = EffectivenessMultiplier(attack.Element, defender.Element)
	out.Tier = TierOf(out.Multiplier)
	out.Damage = Damage(attack.Power, out.Multiplier, out.Critical, defender.Defense)
	defender.SetHealth(defender.Health - out.Damage)

	if attack.Inflicts != game.StatusNone && dc.status.Apply(defender, attack.Inflicts) {
		out.Inflicted = attack.Inflicts
	}
	return out, nil
}

// Damage is the pure damage formula: power scaled by the multiplier and the
// critical bonus, truncated, minus flat defense, never negative.
func Damage(power int, multiplier float64, critical bool, defense int) int {
	// Multipliers are multiples of 0.5, so doubling keeps the product integral.
	doubled := int(float64(power) * multiplier * 2)
	raw := doubled / 2
	if critical {
		raw = doubled * criticalBonusNum / (2 * criticalBonusDen)
	}
	dmg := raw - defense
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

package engine

import "github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"

// effectivenessRow lists the target elements an attack element hits for
// double, half and zero damage.
type effectivenessRow struct {
	double []game.Element
	half   []game.Element
	zero   []game.Element
}

var effectivenessTable = map[game.Element]effectivenessRow{
	game.Normal: {
		half: []game.Element{game.Rock, game.Steel},
		zero: []game.Element{game.Ghost},
	},
	game.Fire: {
		double: []game.Element{game.Grass, game.Ice, game.Bug, game.Steel},
		half:   []game.Element{game.Fire, game.Water, game.Rock, game.Dragon},
	},
	game.Water: {
		double: []game.Element{game.Fire, game.Ground, game.Rock},
		half:   []game.Element{game.Water, game.Grass, game.Dragon},
	},
	game.Electric: {
		double: []game.Element{game.Water, game.Flying},
		half:   []game.Element{game.Electric, game.Grass, game.Dragon},
		zero:   []game.Element{game.Ground},
	},
	game.Grass: {
		double: []game.Element{game.Water, game.Ground, game.Rock},
		half:   []game.Element{game.Fire, game.Grass, game.Poison, game.Flying, game.Bug, game.Dragon, game.Steel},
	},
	game.Ice: {
		double: []game.Element{game.Grass, game.Ground, game.Flying, game.Dragon},
		half:   []game.Element{game.Fire, game.Water, game.Ice, game.Steel},
	},
	game.Fighting: {
		double: []game.Element{game.Normal, game.Ice, game.Rock, game.Dark, game.Steel},
		half:   []game.Element{game.Poison, game.Flying, game.Psychic, game.Bug, game.Fairy},
		zero:   []game.Element{game.Ghost},
	},
	game.Poison: {
		double: []game.Element{game.Grass, game.Fairy},
		half:   []game.Element{game.Poison, game.Ground, game.Rock, game.Ghost},
		zero:   []game.Element{game.Steel},
	},
	game.Ground: {
		double: []game.Element{game.Fire, game.Electric, game.Poison, game.Rock, game.Steel},
		half:   []game.Element{game.Grass, game.Bug},
		zero:   []game.Element{game.Flying},
	},
	game.Flying: {
		double: []game.Element{game.Grass, game.Fighting, game.Bug},
		half:   []game.Element{game.Electric, game.Rock, game.Steel},
	},
	game.Psychic: {
		double: []game.Element{game.Fighting, game.Poison},
		half:   []game.Element{game.Psychic, game.Steel},
		zero:   []game.Element{game.Dark},
	},
	game.Bug: {
		double: []game.Element{game.Grass, game.Psychic, game.Dark},
		half:   []game.Element{game.Fire, game.Fighting, game.Poison, game.Flying, game.Ghost, game.Steel, game.Fairy},
	},
	game.Rock: {
		double: []game.Element{game.Fire, game.Ice, game.Flying, game.Bug},
		half:   []game.Element{game.Fighting, game.Ground, game.Steel},
	},
	game.Ghost: {
		double: []game.Element{game.Psychic, game.Ghost},
		half:   []game.Element{game.Dark},
		zero:   []game.Element{game.Normal},
	},
	game.Dragon: {
		double: []game.Element{game.Dragon},
		half:   []game.Element{game.Steel},
		zero:   []game.Element{game.Fairy},
	},
	game.Dark: {
		double: []game.Element{game.Psychic, game.Ghost},
		half:   []game.Element{game.Fighting, game.Dark, game.Fairy},
	},
	game.Steel: {
		double: []game.Element{game.Ice, game.Rock, game.Fairy},
		half:   []game.Element{game.Fire, game.Water, game.Electric, game.Steel},
	},
	game.Fairy: {
		double: []game.Element{game.Fighting, game.Dragon, game.Dark},
		half:   []game.Element{game.Fire, game.Poison, game.Steel},
	},
}

// Tier names the effectiveness bucket of a multiplier.
type Tier string

const (
	TierNoEffect         Tier = "no_effect"
	TierNotVeryEffective Tier = "not_very_effective"
	TierNeutral          Tier = "neutral"
	TierSuperEffective   Tier = "super_effective"
)

// EffectivenessMultiplier returns 0, 0.5, 1 or 2 for an attack of element
// attack against a creature of element target. An element with no row is
// neutral against everything.
func EffectivenessMultiplier(attack, target game.Element) float64 {
	row, ok := effectivenessTable[attack]
	if !ok {
		return 1.0
	}
	switch {
	case containsElement(row.zero, target):
		return 0.0
	case containsElement(row.double, target):
		return 2.0
	case containsElement(row.half, target):
		return 0.5
	}
	return 1.0
}

// TierOf buckets a multiplier.
func TierOf(multiplier float64) Tier {
	switch {
	case multiplier == 0:
		return TierNoEffect
	case multiplier < 1:
		return TierNotVeryEffective
	case multiplier > 1:
		return TierSuperEffective
	}
	return TierNeutral
}

func containsElement(list []game.Element, e game.Element) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}

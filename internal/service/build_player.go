package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// Rules are the match-independent settings used to build players.
type Rules struct {
	MaxRosterSize     int
	StartingInventory []game.InventorySlot
}

type PlayerSpec struct {
	Name       string
	SpeciesIDs []uint
}

var (
	ErrEmptyName         = errors.New("player name is required")
	ErrDuplicateName     = errors.New("players must have different names")
	ErrInvalidRosterSize = errors.New("roster size out of range")
	ErrSpeciesReused     = errors.New("the same species cannot be picked twice")
	ErrInvalidSpecies    = errors.New("invalid species for roster")
)

// BuildPlayer creates a player whose roster is cloned from the catalog: one
// creature per species ID, each with its element's attack set. Every player
// gets its own copy of the starting inventory.
func BuildPlayer(cat engine.Catalog, rules Rules, spec PlayerSpec) (*game.Player, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if n := len(spec.SpeciesIDs); n == 0 || (rules.MaxRosterSize > 0 && n > rules.MaxRosterSize) {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrInvalidRosterSize, n, rules.MaxRosterSize)
	}

	seen := make(map[uint]struct{}, len(spec.SpeciesIDs))
	roster := make([]*game.Creature, 0, len(spec.SpeciesIDs))
	for _, id := range spec.SpeciesIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrSpeciesReused
		}
		seen[id] = struct{}{}

		tmpl, err := cat.GetCreatureTemplate(id)
		if err != nil {
			return nil, fmt.Errorf("%w: species %d: %v", ErrInvalidSpecies, id, err)
		}
		set, err := cat.GetAttackSet(tmpl.Element)
		if err != nil {
			return nil, fmt.Errorf("%w: species %d: %v", ErrInvalidSpecies, id, err)
		}
		tmpl.Attacks = set[:]
		roster = append(roster, tmpl.Clone())
	}

	inventory := make([]game.InventorySlot, len(rules.StartingInventory))
	copy(inventory, rules.StartingInventory)
	return game.NewPlayer(name, roster, inventory), nil
}

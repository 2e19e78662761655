package storage

import (
	"errors"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

var (
	ErrNotFound            = errors.New("catalog entry not found")
	ErrIncompleteAttackSet = errors.New("element does not have a full attack set")
)

// Repository is the read-only catalog. It also satisfies engine.Catalog.
type Repository interface {
	ListSpecies() ([]game.Species, error)
	GetSpeciesByID(id uint) (*game.Species, error)
	// GetSpeciesByKey looks a species up by its canonical key.
	GetSpeciesByKey(key string) (*game.Species, error)
	// ListMoves returns all moves, or only those of element when it is set,
	// ordered by element and slot.
	ListMoves(element game.Element) ([]game.Move, error)

	GetCreatureTemplate(id uint) (game.Creature, error)
	GetAttackSet(element game.Element) ([game.MaxAttacks]game.Attack, error)
}

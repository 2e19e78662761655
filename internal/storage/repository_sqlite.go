package storage

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/dedupe"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/keys"
)

var _ engine.Catalog = (*sqliteRepository)(nil)

type sqliteRepository struct {
	db *gorm.DB

	mu sync.RWMutex
	// attackSets caches loaded attack sets; the catalog never changes after
	// seeding.
	attackSets map[game.Element][game.MaxAttacks]game.Attack
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db, attackSets: make(map[game.Element][game.MaxAttacks]game.Attack)}
}

func (r *sqliteRepository) ListSpecies() ([]game.Species, error) {
	var species []game.Species
	if err := r.db.Order("id").Find(&species).Error; err != nil {
		return nil, err
	}
	return species, nil
}

func (r *sqliteRepository) GetSpeciesByID(id uint) (*game.Species, error) {
	var s game.Species
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("species %d", id))
	}
	return &s, nil
}

func (r *sqliteRepository) GetSpeciesByKey(key string) (*game.Species, error) {
	var s game.Species
	if err := r.db.Where(&game.Species{Key: keys.CatalogKey(key)}).First(&s).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("species %q", key))
	}
	return &s, nil
}

func (r *sqliteRepository) ListMoves(element game.Element) ([]game.Move, error) {
	var moves []game.Move
	q := r.db.Order("element").Order("slot")
	if element != "" {
		q = q.Where("element = ?", element)
	}
	if err := q.Find(&moves).Error; err != nil {
		return nil, err
	}
	return moves, nil
}

// GetCreatureTemplate returns a full-health creature without attacks.
// Both players picking the same species at once share one query.
func (r *sqliteRepository) GetCreatureTemplate(id uint) (game.Creature, error) {
	v, err, _ := dedupe.SpeciesGroup.Do(fmt.Sprintf("species:%p:%d", r, id), func() (interface{}, error) {
		return r.GetSpeciesByID(id)
	})
	if err != nil {
		return game.Creature{}, err
	}
	return v.(*game.Species).Template(), nil
}

// GetAttackSet returns the four moves of element in slot order. Concurrent
// loads of the same element share one query.
func (r *sqliteRepository) GetAttackSet(element game.Element) ([game.MaxAttacks]game.Attack, error) {
	r.mu.RLock()
	set, ok := r.attackSets[element]
	r.mu.RUnlock()
	if ok {
		return set, nil
	}

	v, err, _ := dedupe.AttackSetGroup.Do(fmt.Sprintf("attacks:%p:%s", r, element), func() (interface{}, error) {
		return r.loadAttackSet(element)
	})
	if err != nil {
		return [game.MaxAttacks]game.Attack{}, err
	}
	set = v.([game.MaxAttacks]game.Attack)
	r.mu.Lock()
	r.attackSets[element] = set
	r.mu.Unlock()
	return set, nil
}

func (r *sqliteRepository) loadAttackSet(element game.Element) ([game.MaxAttacks]game.Attack, error) {
	var set [game.MaxAttacks]game.Attack
	moves, err := r.ListMoves(element)
	if err != nil {
		return set, err
	}
	if len(moves) != game.MaxAttacks {
		return set, fmt.Errorf("%w: %s has %d moves", ErrIncompleteAttackSet, element, len(moves))
	}
	for i, m := range moves {
		set[i] = m.Attack()
	}
	return set, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

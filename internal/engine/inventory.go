package engine

import (
	"fmt"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// InventoryManager applies consumables to a player's creatures.
type InventoryManager struct {
	status *StatusEngine
}

func NewInventoryManager(status *StatusEngine) *InventoryManager {
	return &InventoryManager{status: status}
}

type itemEffect func(im *InventoryManager, owner *game.Player, target int, item game.Consumable) error

// itemEffects is the dispatch table for consumable kinds.
var itemEffects = map[game.ConsumableKind]itemEffect{
	game.Revive: func(im *InventoryManager, owner *game.Player, target int, _ game.Consumable) error {
		return im.ApplyRevive(owner, target)
	},
	game.SuperHeal: func(im *InventoryManager, owner *game.Player, target int, item game.Consumable) error {
		return im.ApplyHeal(owner, target, item.Magnitude)
	},
	game.FullHeal: func(im *InventoryManager, owner *game.Player, target int, _ game.Consumable) error {
		return im.ApplyFullCure(owner, target)
	},
}

// TargetsFainted reports whether a consumable kind takes its target from the
// fainted list instead of the roster.
func TargetsFainted(kind game.ConsumableKind) bool {
	return kind == game.Revive
}

// Use applies the consumable in inventory slot to target and decrements the
// slot count. target indexes owner.Fainted for revives and owner.Roster
// otherwise. Nothing changes when an error is returned.
func (im *InventoryManager) Use(owner *game.Player, slot, target int) (game.Consumable, error) {
	if owner == nil {
		return game.Consumable{}, ErrNilArgument
	}
	if slot < 0 || slot >= len(owner.Inventory) {
		return game.Consumable{}, fmt.Errorf("%w: inventory slot %d", ErrIndexOutOfRange, slot)
	}
	s := &owner.Inventory[slot]
	if s.Count <= 0 {
		return s.Item, fmt.Errorf("%w: %s", ErrNoItemsLeft, s.Item.Name)
	}
	apply, ok := itemEffects[s.Item.Kind]
	if !ok {
		return s.Item, fmt.Errorf("%w: %q", ErrUnknownConsumable, s.Item.Kind)
	}
	if err := apply(im, owner, target, s.Item); err != nil {
		return s.Item, err
	}
	s.Count--
	return s.Item, nil
}

// ApplyRevive restores the fainted creature at faintedIndex to half of its max
// health (at least 1), clears its status and moves it back into the roster.
func (im *InventoryManager) ApplyRevive(owner *game.Player, faintedIndex int) error {
	if owner == nil {
		return ErrNilArgument
	}
	if faintedIndex < 0 || faintedIndex >= len(owner.Fainted) {
		return fmt.Errorf("%w: fainted index %d", ErrIndexOutOfRange, faintedIndex)
	}
	c := owner.Fainted[faintedIndex]
	if c.Health > 0 {
		return fmt.Errorf("%w: %s", ErrTargetNotFainted, c.Name)
	}
	hp := c.MaxHealth / 2
	if hp < 1 {
		hp = 1
	}
	c.SetHealth(hp)
	im.status.Clear(c)
	owner.Restore(faintedIndex)
	return nil
}

// ApplyHeal raises the roster creature's health by amount, capped at max
// health. Fainted creatures cannot be healed.
func (im *InventoryManager) ApplyHeal(owner *game.Player, rosterIndex, amount int) error {
	c, err := rosterTarget(owner, rosterIndex)
	if err != nil {
		return err
	}
	if c.Health <= 0 {
		return fmt.Errorf("%w: %s", ErrTargetFainted, c.Name)
	}
	if amount < 0 {
		amount = 0
	}
	c.SetHealth(c.Health + amount)
	return nil
}

// ApplyFullCure clears the roster creature's status whatever its health.
func (im *InventoryManager) ApplyFullCure(owner *game.Player, rosterIndex int) error {
	c, err := rosterTarget(owner, rosterIndex)
	if err != nil {
		return err
	}
	im.status.Clear(c)
	return nil
}

func rosterTarget(owner *game.Player, i int) (*game.Creature, error) {
	if owner == nil {
		return nil, ErrNilArgument
	}
	if i < 0 || i >= len(owner.Roster) {
		return nil, fmt.Errorf("%w: roster index %d", ErrIndexOutOfRange, i)
	}
	return owner.Roster[i], nil
}

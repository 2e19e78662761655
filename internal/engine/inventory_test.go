package engine

import (
	"errors"
	"testing"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

var (
	revive    = game.Consumable{Kind: game.Revive, Name: "Revive"}
	superHeal = game.Consumable{Kind: game.SuperHeal, Name: "Super Potion", Magnitude: 50}
	fullHeal  = game.Consumable{Kind: game.FullHeal, Name: "Full Heal"}
)

func newInventory() *InventoryManager { return NewInventoryManager(NewStatusEngine(roll())) }

func TestUseRevive(t *testing.T) {
	down := newCreature("Gengar", game.Ghost, 0, 0)
	down.Status = game.StatusBurned
	p := game.NewPlayer("Ash", nil, []game.InventorySlot{{Item: revive, Count: 1}})
	p.Fainted = []*game.Creature{down}

	item, err := newInventory().Use(p, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Kind != game.Revive {
		t.Fatalf("expected revive, got %s", item.Kind)
	}
	if down.Health != 50 {
		t.Fatalf("expected health 50, got %d", down.Health)
	}
	if down.Status != game.StatusNone {
		t.Fatalf("expected revive to clear status, got %s", down.Status)
	}
	if len(p.Fainted) != 0 || len(p.Roster) != 1 || p.Selected != down {
		t.Fatalf("expected creature back in roster and selected: %+v", p)
	}
	if p.Inventory[0].Count != 0 {
		t.Fatalf("expected count 0, got %d", p.Inventory[0].Count)
	}
	if _, err := newInventory().Use(p, 0, 0); !errors.Is(err, ErrNoItemsLeft) {
		t.Fatalf("expected ErrNoItemsLeft, got %v", err)
	}
}

func TestApplyRevive_Rejections(t *testing.T) {
	alive := newCreature("Gengar", game.Ghost, 10, 0)
	p := game.NewPlayer("Ash", nil, []game.InventorySlot{{Item: revive, Count: 1}})
	p.Fainted = []*game.Creature{alive}

	im := newInventory()
	if _, err := im.Use(p, 0, 0); !errors.Is(err, ErrTargetNotFainted) {
		t.Fatalf("expected ErrTargetNotFainted, got %v", err)
	}
	if _, err := im.Use(p, 0, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if p.Inventory[0].Count != 1 || len(p.Fainted) != 1 {
		t.Fatalf("rejected revive must leave state unchanged: %+v", p)
	}
}

func TestApplyHeal(t *testing.T) {
	low := newCreature("Bulbasaur", game.Grass, 40, 0)
	high := newCreature("Ivysaur", game.Grass, 80, 0)
	down := newCreature("Venusaur", game.Grass, 0, 0)
	p := game.NewPlayer("Misty", []*game.Creature{low, high, down}, nil)

	im := newInventory()
	if err := im.ApplyHeal(p, 0, 50); err != nil || low.Health != 90 {
		t.Fatalf("expected 90 health, got %d (%v)", low.Health, err)
	}
	if err := im.ApplyHeal(p, 1, 50); err != nil || high.Health != 100 {
		t.Fatalf("expected heal capped at 100, got %d (%v)", high.Health, err)
	}
	if err := im.ApplyHeal(p, 2, 50); !errors.Is(err, ErrTargetFainted) || down.Health != 0 {
		t.Fatalf("expected ErrTargetFainted, got %v (health %d)", err, down.Health)
	}
	if err := im.ApplyHeal(p, 9, 50); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestUseFullHeal(t *testing.T) {
	c := newCreature("Ekans", game.Poison, 0, 0)
	c.Status = game.StatusPoisoned
	p := game.NewPlayer("Brock", []*game.Creature{c}, []game.InventorySlot{
		{Item: superHeal, Count: 0},
		{Item: fullHeal, Count: 2},
	})

	im := newInventory()
	if _, err := im.Use(p, 0, 0); !errors.Is(err, ErrNoItemsLeft) {
		t.Fatalf("expected ErrNoItemsLeft, got %v", err)
	}
	if _, err := im.Use(p, 1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != game.StatusNone {
		t.Fatalf("expected status cleared, got %s", c.Status)
	}
	if p.Inventory[1].Count != 1 {
		t.Fatalf("expected count 1, got %d", p.Inventory[1].Count)
	}
}

func TestUseUnknownKind(t *testing.T) {
	c := newCreature("Ekans", game.Poison, 50, 0)
	p := game.NewPlayer("Brock", []*game.Creature{c}, []game.InventorySlot{
		{Item: game.Consumable{Kind: "rare_candy", Name: "Rare Candy"}, Count: 1},
	})
	if _, err := newInventory().Use(p, 0, 0); !errors.Is(err, ErrUnknownConsumable) {
		t.Fatalf("expected ErrUnknownConsumable, got %v", err)
	}
	if p.Inventory[0].Count != 1 {
		t.Fatalf("count must not change on failure")
	}
}

func TestApplyRevive_TinyMaxHealthStaysAlive(t *testing.T) {
	down := newCreature("Shedinja", game.Bug, 0, 0)
	down.MaxHealth = 1
	p := game.NewPlayer("Ash", nil, []game.InventorySlot{{Item: revive, Count: 1}})
	p.Fainted = []*game.Creature{down}

	if _, err := newInventory().Use(p, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if down.Health != 1 || down.Fainted() {
		t.Fatalf("revived creature must have at least 1 HP, got %d", down.Health)
	}
	if len(p.Roster) != 1 || p.Selected != down {
		t.Fatalf("expected creature back in roster and selected: %+v", p)
	}
}

package engine

import (
	"fmt"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// execAttack resolves one attack of the active creature against the
// opponent's selected creature.
func (tc *turnContext) execAttack() error {
	p := tc.player
	attacker := p.Selected
	if attacker == nil {
		return ErrNoCreature
	}
	if len(attacker.Attacks) == 0 {
		return fmt.Errorf("%w: %s", ErrNoAttacks, attacker.Name)
	}
	i, err := tc.choices().SelectAttackIndex(p)
	if err != nil {
		return fromSource(err)
	}
	if !inRange(i, len(attacker.Attacks)) {
		return fmt.Errorf("%w: attack %d", ErrIndexOutOfRange, i)
	}
	defender := tc.opponent.Selected
	if defender == nil {
		return ErrNoCreature
	}
	attack := attacker.Attacks[i]

	out, err := tc.c.damage.ResolveAttack(attacker, &attack, defender)
	if err != nil {
		return err
	}
	if !out.Hit {
		tc.emit(Event{Kind: EventMiss, Player: p.Name, Creature: attacker.Name, Target: defender.Name, Attack: attack.Name})
		return nil
	}
	if out.Critical {
		tc.emit(Event{Kind: EventCritical, Player: p.Name, Creature: attacker.Name, Attack: attack.Name})
	}
	if out.Tier != TierNeutral {
		tc.emit(Event{Kind: EventEffectiveness, Player: p.Name, Attack: attack.Name, Tier: out.Tier})
	}
	tc.emit(Event{
		Kind:     EventDamage,
		Player:   p.Name,
		Creature: attacker.Name,
		Target:   defender.Name,
		Attack:   attack.Name,
		Damage:   out.Damage,
		Health:   defender.Health,
		Tier:     out.Tier,
	})
	if out.Inflicted != game.StatusNone {
		tc.emit(Event{Kind: EventStatusInflicted, Player: tc.opponent.Name, Target: defender.Name, Status: out.Inflicted})
	}
	return nil
}

// execUseItem applies one consumable. Revives target the fainted list, every
// other kind targets the roster.
func (tc *turnContext) execUseItem() error {
	p := tc.player
	if p.ItemCount() == 0 {
		return ErrNoItems
	}
	slot, err := tc.choices().SelectInventorySlot(p)
	if err != nil {
		return fromSource(err)
	}
	if !inRange(slot, len(p.Inventory)) {
		return fmt.Errorf("%w: inventory slot %d", ErrIndexOutOfRange, slot)
	}
	s := p.Inventory[slot]
	if s.Count <= 0 {
		return fmt.Errorf("%w: %s", ErrNoItemsLeft, s.Item.Name)
	}

	var target int
	candidates := p.Roster
	if TargetsFainted(s.Item.Kind) {
		if len(p.Fainted) == 0 {
			return ErrNoFaintedCreatures
		}
		candidates = p.Fainted
		target, err = tc.choices().SelectFaintedIndex(p)
	} else {
		target, err = tc.choices().SelectRosterIndex(p, false)
	}
	if err != nil {
		return fromSource(err)
	}
	var c *game.Creature
	if inRange(target, len(candidates)) {
		c = candidates[target]
	}
	item, err := tc.c.items.Use(p, slot, target)
	if err != nil {
		return err
	}
	tc.emitItemUsed(p, item, c)
	return nil
}

func (tc *turnContext) emitItemUsed(p *game.Player, item game.Consumable, c *game.Creature) {
	e := Event{Kind: EventItemUsed, Player: p.Name, Item: item.Name, Target: creatureName(c)}
	if c != nil {
		e.Health = c.Health
		e.Status = c.Status
	}
	tc.emit(e)
}

// execSwitch replaces the selected creature with another living roster
// member. The switch ends the turn.
func (tc *turnContext) execSwitch() error {
	p := tc.player
	if len(p.Roster) < 2 {
		return ErrNoAlternative
	}
	i, err := tc.choices().SelectRosterIndex(p, true)
	if err != nil {
		return fromSource(err)
	}
	if !inRange(i, len(p.Roster)) {
		return fmt.Errorf("%w: roster %d", ErrIndexOutOfRange, i)
	}
	c := p.Roster[i]
	if c == p.Selected {
		return fmt.Errorf("%w: %s", ErrSameCreature, c.Name)
	}
	if c.Fainted() {
		return fmt.Errorf("%w: %s", ErrTargetFainted, c.Name)
	}
	p.Selected = c
	tc.emit(Event{Kind: EventSwitched, Player: p.Name, Creature: c.Name, Health: c.Health})
	return nil
}

package game

// Player owns its roster, the benched (fainted) list and its inventory.
// Selected always points into Roster while Roster is non-empty.
type Player struct {
	Name      string          `json:"name"`
	Roster    []*Creature     `json:"roster"`
	Fainted   []*Creature     `json:"fainted"`
	Inventory []InventorySlot `json:"inventory"`
	Selected  *Creature       `json:"-"`
}

// NewPlayer builds a player whose first roster entry is selected.
func NewPlayer(name string, roster []*Creature, inventory []InventorySlot) *Player {
	p := &Player{Name: name, Roster: roster, Inventory: inventory}
	if len(roster) > 0 {
		p.Selected = roster[0]
	}
	return p
}

// SelectedIndex returns the roster index of the selected creature or -1.
func (p *Player) SelectedIndex() int {
	return indexOf(p.Roster, p.Selected)
}

// HasUsableCreatures reports whether the roster still holds a creature.
func (p *Player) HasUsableCreatures() bool {
	return len(p.Roster) > 0
}

// Bench moves c from the roster to the fainted list. It returns false when c
// is not in the roster, so a creature is benched at most once. The selection
// is cleared when the selected creature is benched.
func (p *Player) Bench(c *Creature) bool {
	i := indexOf(p.Roster, c)
	if i < 0 {
		return false
	}
	p.Roster = append(p.Roster[:i], p.Roster[i+1:]...)
	p.Fainted = append(p.Fainted, c)
	if p.Selected == c {
		p.Selected = nil
	}
	return true
}

// Restore moves the fainted creature at index i back to the end of the
// roster and returns it.
func (p *Player) Restore(i int) *Creature {
	c := p.Fainted[i]
	p.Fainted = append(p.Fainted[:i], p.Fainted[i+1:]...)
	p.Roster = append(p.Roster, c)
	if p.Selected == nil {
		p.Selected = c
	}
	return c
}

// ItemCount returns the number of consumables left across all slots.
func (p *Player) ItemCount() int {
	n := 0
	for _, s := range p.Inventory {
		n += s.Count
	}
	return n
}

// CountOf returns the remaining count of the given kind.
func (p *Player) CountOf(kind ConsumableKind) int {
	n := 0
	for _, s := range p.Inventory {
		if s.Item.Kind == kind {
			n += s.Count
		}
	}
	return n
}

// SlotOf returns the first slot index holding at least one item of kind, or -1.
func (p *Player) SlotOf(kind ConsumableKind) int {
	for i, s := range p.Inventory {
		if s.Item.Kind == kind && s.Count > 0 {
			return i
		}
	}
	return -1
}

func indexOf(list []*Creature, c *Creature) int {
	if c == nil {
		return -1
	}
	for i := range list {
		if list[i] == c {
			return i
		}
	}
	return -1
}

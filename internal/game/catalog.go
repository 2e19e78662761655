package game

import "gorm.io/gorm"

// Species is a creature template row in the catalog database. Rows are seeded
// from configuration and only read afterwards.
type Species struct {
	gorm.Model
	// Key is the canonical lowercase name (see keys.CatalogKey).
	Key       string  `json:"key" gorm:"uniqueIndex"`
	Name      string  `json:"name"`
	Element   Element `json:"element" gorm:"index"`
	MaxHealth int     `json:"max_health"`
	Defense   int     `json:"defense"`
}

// TableName keeps the table name stable across renames of the struct.
func (Species) TableName() string { return "creature_templates" }

// Template converts the row into a full-health creature without attacks.
func (s Species) Template() Creature {
	hp := s.MaxHealth
	if hp <= 0 {
		hp = DefaultMaxHealth
	}
	return Creature{Name: s.Name, Health: hp, MaxHealth: hp, Defense: s.Defense, Element: s.Element}
}

// Move is an attack row in the catalog. Each element owns MaxAttacks moves,
// ordered by Slot.
type Move struct {
	gorm.Model
	Key      string  `json:"key" gorm:"uniqueIndex"`
	Name     string  `json:"name"`
	Element  Element `json:"element" gorm:"index:idx_move_element_slot"`
	Slot     int     `json:"slot" gorm:"index:idx_move_element_slot"`
	Power    int     `json:"power"`
	Accuracy int     `json:"accuracy"`
	Inflicts Status  `json:"inflicts"`
}

func (Move) TableName() string { return "attack_templates" }

func (m Move) Attack() Attack {
	return Attack{Name: m.Name, Power: m.Power, Element: m.Element, Accuracy: m.Accuracy, Inflicts: m.Inflicts}
}

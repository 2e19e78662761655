package game

// MaxAttacks is the number of attack slots a creature has.
const MaxAttacks = 4

// DefaultMaxHealth is used when a template does not configure max health.
const DefaultMaxHealth = 100

// Attack is immutable value data. Copying an Attack never aliases state.
type Attack struct {
	Name     string  `json:"name"`
	Power    int     `json:"power"`
	Element  Element `json:"element"`
	Accuracy int     `json:"accuracy"`
	// Inflicts is the status applied on hit, independent of the element.
	Inflicts Status `json:"inflicts,omitempty"`
}

type Creature struct {
	Name      string   `json:"name"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"max_health"`
	Defense   int      `json:"defense"`
	Element   Element  `json:"element"`
	Attacks   []Attack `json:"attacks"`
	Status    Status   `json:"status"`
	// SleepTurns counts the remaining turns of StatusAsleep.
	SleepTurns int `json:"sleep_turns"`
}

// Clone returns a deep copy so rosters built from the same template never
// share attack slices.
func (c Creature) Clone() *Creature {
	out := c
	out.Attacks = make([]Attack, len(c.Attacks))
	copy(out.Attacks, c.Attacks)
	return &out
}

// SetHealth stores hp clamped to [0, MaxHealth].
func (c *Creature) SetHealth(hp int) {
	if hp < 0 {
		hp = 0
	}
	if c.MaxHealth > 0 && hp > c.MaxHealth {
		hp = c.MaxHealth
	}
	c.Health = hp
}

func (c *Creature) Fainted() bool { return c.Health <= 0 }

// ConsumableKind tags a consumable; item effects dispatch on it.
type ConsumableKind string

const (
	Revive    ConsumableKind = "revive"
	FullHeal  ConsumableKind = "full_heal"
	SuperHeal ConsumableKind = "super_heal"
)

type Consumable struct {
	Kind      ConsumableKind `json:"kind"`
	Name      string         `json:"name"`
	Magnitude int            `json:"magnitude"`
}

// InventorySlot groups consumables of one kind with their remaining count.
type InventorySlot struct {
	Item  Consumable `json:"item"`
	Count int        `json:"count"`
}

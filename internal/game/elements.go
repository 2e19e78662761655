package game

import "strings"

// Element is the elemental type carried by creatures and attacks.
type Element string

const (
	Normal   Element = "Normal"
	Fire     Element = "Fire"
	Water    Element = "Water"
	Electric Element = "Electric"
	Grass    Element = "Grass"
	Ice      Element = "Ice"
	Fighting Element = "Fighting"
	Poison   Element = "Poison"
	Ground   Element = "Ground"
	Flying   Element = "Flying"
	Psychic  Element = "Psychic"
	Bug      Element = "Bug"
	Rock     Element = "Rock"
	Ghost    Element = "Ghost"
	Dragon   Element = "Dragon"
	Dark     Element = "Dark"
	Steel    Element = "Steel"
	Fairy    Element = "Fairy"
)

// Elements lists every known element in chart order.
var Elements = []Element{
	Normal, Fire, Water, Electric, Grass, Ice, Fighting, Poison, Ground,
	Flying, Psychic, Bug, Rock, Ghost, Dragon, Dark, Steel, Fairy,
}

// ParseElement resolves a case-insensitive element name. The boolean is false
// for names outside the fixed set.
func ParseElement(s string) (Element, bool) {
	s = strings.TrimSpace(s)
	for _, e := range Elements {
		if strings.EqualFold(string(e), s) {
			return e, true
		}
	}
	return Element(s), false
}

// Status is the persistent condition of a creature. A creature holds at most
// one status at a time.
type Status string

const (
	StatusNone      Status = ""
	StatusAsleep    Status = "asleep"
	StatusParalyzed Status = "paralyzed"
	StatusPoisoned  Status = "poisoned"
	StatusBurned    Status = "burned"
)

// ParseStatus resolves a status name; empty and "none" map to StatusNone.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return StatusNone, true
	case string(StatusAsleep), "sleep":
		return StatusAsleep, true
	case string(StatusParalyzed), "paralysis":
		return StatusParalyzed, true
	case string(StatusPoisoned), "poison":
		return StatusPoisoned, true
	case string(StatusBurned), "burn":
		return StatusBurned, true
	}
	return StatusNone, false
}

func (s Status) String() string {
	if s == StatusNone {
		return "none"
	}
	return string(s)
}

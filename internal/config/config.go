package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/keys"
)

const defaultMaxRosterSize = 3

type speciesEntry struct {
	Name      string `json:"name" yaml:"name"`
	Element   string `json:"element" yaml:"element"`
	MaxHealth int    `json:"max_health" yaml:"max_health"`
	Defense   int    `json:"defense" yaml:"defense"`
}

type moveEntry struct {
	Name     string `json:"name" yaml:"name"`
	Element  string `json:"element" yaml:"element"`
	Power    int    `json:"power" yaml:"power"`
	Accuracy int    `json:"accuracy" yaml:"accuracy"`
	Inflicts string `json:"inflicts" yaml:"inflicts"`
}

type itemEntry struct {
	Kind      string `json:"kind" yaml:"kind"`
	Name      string `json:"name" yaml:"name"`
	Magnitude int    `json:"magnitude" yaml:"magnitude"`
	Count     int    `json:"count" yaml:"count"`
}

type rawConfig struct {
	SpeciesList       []speciesEntry `json:"species_list" yaml:"species_list"`
	MoveList          []moveEntry    `json:"move_list" yaml:"move_list"`
	StartingInventory []itemEntry    `json:"starting_inventory" yaml:"starting_inventory"`
	MaxRosterSize     int            `json:"max_roster_size" yaml:"max_roster_size"`
	Server            *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
	Database *struct {
		DSN string `json:"dsn" yaml:"dsn"`
	} `json:"database" yaml:"database"`
}

// LoadedConfig contains the catalog to seed, the starting inventory of every
// player and the addresses the binaries bind to.
type LoadedConfig struct {
	Species           []game.Species
	Moves             []game.Move
	StartingInventory []game.InventorySlot
	MaxRosterSize     int
	ServerAddress     string
	DatabaseDSN       string
}

// LoadConfig reads the configuration file at path. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON. It requires `species_list`
// and `move_list`, and every element used by a species must own exactly four
// moves. POKEBATTLE_DB and POKEBATTLE_ADDR override the file values.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rc)
	default:
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	species, err := buildSpecies(rc.SpeciesList)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	moves, err := buildMoves(rc.MoveList)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := validateAttackSets(species, moves); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	inventory, err := buildInventory(rc.StartingInventory)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	roster := rc.MaxRosterSize
	if roster == 0 {
		roster = defaultMaxRosterSize
	}
	if roster < 1 {
		return nil, fmt.Errorf("config file %s: max_roster_size must be positive", path)
	}

	addr := constants.DefaultAddress
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	dsn := constants.DefaultDatabase
	if rc.Database != nil && rc.Database.DSN != "" {
		dsn = rc.Database.DSN
	}
	if v := os.Getenv(constants.EnvAddress); v != "" {
		addr = v
	}
	if v := os.Getenv(constants.EnvDatabase); v != "" {
		dsn = v
	}

	return &LoadedConfig{
		Species:           species,
		Moves:             moves,
		StartingInventory: inventory,
		MaxRosterSize:     roster,
		ServerAddress:     addr,
		DatabaseDSN:       dsn,
	}, nil
}

// ResolvePath returns explicit when set, then POKEBATTLE_CONFIG, then the
// default file name.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(constants.EnvConfigPath); v != "" {
		return v
	}
	return constants.DefaultConfigPath
}

func buildSpecies(entries []speciesEntry) ([]game.Species, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("species_list is empty (provide 'species_list' array)")
	}
	out := make([]game.Species, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("species entry missing 'name'")
		}
		key := keys.CatalogKey(e.Name)
		if _, exists := seen[key]; exists {
			return nil, fmt.Errorf("duplicate species name '%s'", e.Name)
		}
		seen[key] = struct{}{}
		el, ok := game.ParseElement(e.Element)
		if !ok {
			return nil, fmt.Errorf("species '%s': unknown element '%s'", e.Name, e.Element)
		}
		hp := e.MaxHealth
		if hp == 0 {
			hp = game.DefaultMaxHealth
		}
		// Revive restores half of max health, which must not round to zero.
		if hp < 2 {
			return nil, fmt.Errorf("species '%s': max_health must be at least 2", e.Name)
		}
		if e.Defense < 0 {
			return nil, fmt.Errorf("species '%s': defense must not be negative", e.Name)
		}
		out = append(out, game.Species{
			Key:       key,
			Name:      keys.DisplayName(e.Name),
			Element:   el,
			MaxHealth: hp,
			Defense:   e.Defense,
		})
	}
	return out, nil
}

func buildMoves(entries []moveEntry) ([]game.Move, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("move_list is empty (provide 'move_list' array)")
	}
	out := make([]game.Move, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	slots := make(map[game.Element]int)
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("move entry missing 'name'")
		}
		key := keys.CatalogKey(e.Name)
		if _, exists := seen[key]; exists {
			return nil, fmt.Errorf("duplicate move name '%s'", e.Name)
		}
		seen[key] = struct{}{}
		el, ok := game.ParseElement(e.Element)
		if !ok {
			return nil, fmt.Errorf("move '%s': unknown element '%s'", e.Name, e.Element)
		}
		if e.Power <= 0 {
			return nil, fmt.Errorf("move '%s': power must be positive", e.Name)
		}
		if e.Accuracy < 0 || e.Accuracy > 100 {
			return nil, fmt.Errorf("move '%s': accuracy must be within 0-100", e.Name)
		}
		st, ok := game.ParseStatus(e.Inflicts)
		if !ok {
			return nil, fmt.Errorf("move '%s': unknown status '%s'", e.Name, e.Inflicts)
		}
		out = append(out, game.Move{
			Key:      key,
			Name:     keys.DisplayName(e.Name),
			Element:  el,
			Slot:     slots[el],
			Power:    e.Power,
			Accuracy: e.Accuracy,
			Inflicts: st,
		})
		slots[el]++
	}
	return out, nil
}

// validateAttackSets enforces that every element used by a species has
// exactly game.MaxAttacks moves.
func validateAttackSets(species []game.Species, moves []game.Move) error {
	count := make(map[game.Element]int)
	for _, m := range moves {
		count[m.Element]++
	}
	for _, s := range species {
		if n := count[s.Element]; n != game.MaxAttacks {
			return fmt.Errorf("element '%s' of species '%s' has %d moves, want %d", s.Element, s.Name, n, game.MaxAttacks)
		}
	}
	return nil
}

func buildInventory(entries []itemEntry) ([]game.InventorySlot, error) {
	out := make([]game.InventorySlot, 0, len(entries))
	for _, e := range entries {
		kind := game.ConsumableKind(strings.ToLower(strings.TrimSpace(e.Kind)))
		switch kind {
		case game.Revive, game.FullHeal:
		case game.SuperHeal:
			if e.Magnitude <= 0 {
				return nil, fmt.Errorf("item '%s': super_heal requires a positive magnitude", e.Kind)
			}
		default:
			return nil, fmt.Errorf("unknown item kind '%s'", e.Kind)
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("item '%s': count must not be negative", e.Kind)
		}
		name := e.Name
		if name == "" {
			name = strings.ReplaceAll(string(kind), "_", " ")
		}
		out = append(out, game.InventorySlot{
			Item:  game.Consumable{Kind: kind, Name: keys.DisplayName(name), Magnitude: e.Magnitude},
			Count: e.Count,
		})
	}
	return out, nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/config"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/storage"
)

func loadConfig(path string) (*config.LoadedConfig, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Error("Missing or invalid pokebattle configuration", err, logging.Fields{"config_path": path})
		return nil, err
	}
	return cfg, nil
}

func createRepository(cfg *config.LoadedConfig) (storage.Repository, error) {
	db, err := storage.OpenAndMigrate(cfg.DatabaseDSN, cfg.Species, cfg.Moves)
	if err != nil {
		return nil, logged("Failed to initialize database", err)
	}
	return storage.NewSQLiteRepository(db), nil
}

// speciesLister is the part of storage.Repository needed to pick teams.
type speciesLister interface {
	ListSpecies() ([]game.Species, error)
}

// pickTeam parses a comma separated list of species IDs. An empty list picks
// size distinct species at random.
func pickTeam(repo speciesLister, flagValue string, size int, rng engine.Roller) ([]uint, error) {
	if strings.TrimSpace(flagValue) != "" {
		return parseTeam(flagValue)
	}
	all, err := repo.ListSpecies()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, errors.New("the catalog has no species")
	}
	ids := make([]uint, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
	if size > len(ids) {
		size = len(ids)
	}
	return ids[:size], nil
}

func parseTeam(v string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid species id %q", part)
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, errors.New("empty team")
	}
	return ids, nil
}

func printCatalog(w io.Writer, repo speciesLister) error {
	all, err := repo.ListSpecies()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tELEMENT\tHP\tDEF")
	for _, s := range all {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", s.ID, s.Name, s.Element, s.MaxHealth, s.Defense)
	}
	return tw.Flush()
}

package main

import (
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/api"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/config"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/storage"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/version"
)

func main() {
	configPath := config.ResolvePath("")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid pokebattle configuration", err, logging.Fields{"config_path": configPath, "hint": "create a pokebattle_config.yaml with 'species_list' (name,element,max_health,defense) and 'move_list' (name,element,power,accuracy,inflicts), four moves per element, and optional keys: starting_inventory, max_roster_size, server.address, database.dsn"})
	}

	db, err := storage.OpenAndMigrate(cfg.DatabaseDSN, cfg.Species, cfg.Moves)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)
	router := api.NewRouter(api.NewCatalogHandler(repo))

	addr := cfg.ServerAddress
	// For logging present a http://localhost:PORT style when address starts with ':'
	displayAddr := addr
	if len(addr) > 0 && addr[0] == ':' {
		displayAddr = "http://localhost" + addr
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: displayAddr, "version": version.String()})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

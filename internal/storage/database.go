package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
)

// OpenAndMigrate opens the catalog database, migrates the schema and upserts
// the configured species and moves. The config file stays the single source
// of truth: existing rows are overwritten by key.
func OpenAndMigrate(dataSourceName string, species []game.Species, moves []game.Move) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Species{}, &game.Move{}); err != nil {
		return nil, err
	}
	if err := seedCatalog(db, species, moves); err != nil {
		return nil, err
	}
	return db, nil
}

func seedCatalog(db *gorm.DB, species []game.Species, moves []game.Move) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(species) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "element", "max_health", "defense", "updated_at"}),
			}).Create(&species).Error
			if err != nil {
				return err
			}
		}
		if len(moves) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "element", "slot", "power", "accuracy", "inflicts", "updated_at"}),
			}).Create(&moves).Error
			if err != nil {
				return err
			}
		}
		if err := pruneStale(tx, species, moves); err != nil {
			return err
		}
		logging.Info("catalog seeded", logging.Fields{
			constants.LogFieldSource: "config",
			constants.LogFieldCount:  len(species),
			"moves":                  len(moves),
		})
		return nil
	})
}

// pruneStale removes rows whose key is no longer configured.
func pruneStale(tx *gorm.DB, species []game.Species, moves []game.Move) error {
	speciesKeys := make([]string, 0, len(species))
	for _, s := range species {
		speciesKeys = append(speciesKeys, s.Key)
	}
	moveKeys := make([]string, 0, len(moves))
	for _, m := range moves {
		moveKeys = append(moveKeys, m.Key)
	}
	if len(speciesKeys) > 0 {
		if err := tx.Unscoped().Where("`key` NOT IN ?", speciesKeys).Delete(&game.Species{}).Error; err != nil {
			return err
		}
	}
	if len(moveKeys) > 0 {
		if err := tx.Unscoped().Where("`key` NOT IN ?", moveKeys).Delete(&game.Move{}).Error; err != nil {
			return err
		}
	}
	return nil
}

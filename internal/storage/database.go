package storage

import (
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database at dataSourceName and keeps the
// schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.BattleReport{}, &game.LookupCache{}); err != nil {
		return nil, err
	}
	return db, nil
}

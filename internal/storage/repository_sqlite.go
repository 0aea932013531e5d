package storage

import (
	"errors"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveBattleReport(rep *game.BattleReport) error {
	return r.db.Create(rep).Error
}

func (r *sqliteRepository) GetBattleReportByID(id uint) (*game.BattleReport, error) {
	var rep game.BattleReport
	if err := r.db.First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *sqliteRepository) ListBattleReports(limit int) ([]game.BattleReport, error) {
	var reps []game.BattleReport
	q := r.db.Omit("transcript").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reps).Error; err != nil {
		return nil, err
	}
	return reps, nil
}

func (r *sqliteRepository) GetLookup(kind, key string) ([]byte, bool, error) {
	var entry game.LookupCache
	err := r.db.Where("kind = ? AND key = ?", kind, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Response, true, nil
}

func (r *sqliteRepository) SaveLookup(kind, key string, response []byte) error {
	entry := game.LookupCache{Kind: kind, Key: key, Response: response}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"response", "updated_at"}),
	}).Create(&entry).Error
}

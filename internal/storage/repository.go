package storage

import (
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

type Repository interface {
	// Battle reports
	SaveBattleReport(r *game.BattleReport) error
	GetBattleReportByID(id uint) (*game.BattleReport, error)
	ListBattleReports(limit int) ([]game.BattleReport, error)

	// Species/move lookup cache, keyed by lookup kind and resource slug.
	GetLookup(kind, key string) ([]byte, bool, error)
	SaveLookup(kind, key string, response []byte) error
}

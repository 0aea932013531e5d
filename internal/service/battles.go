package service

import (
	"encoding/json"
	"errors"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/storage"
)

var ErrBattleNotFound = errors.New("battle not found")

// defaultListLimit bounds the battles list response.
const defaultListLimit = 50

// StoredBattle is one persisted battle with its decoded transcript.
type StoredBattle struct {
	Report game.BattleReport `json:"report"`
	Result game.BattleResult `json:"result"`
}

// ListBattles returns recent battle reports, newest first, without
// transcripts.
func ListBattles(repo storage.Repository) ([]game.BattleReport, error) {
	return repo.ListBattleReports(defaultListLimit)
}

// GetBattle loads one battle report and decodes its stored transcript.
func GetBattle(repo storage.Repository, id uint) (*StoredBattle, error) {
	report, err := repo.GetBattleReportByID(id)
	if err != nil || report == nil {
		return nil, ErrBattleNotFound
	}
	out := &StoredBattle{Report: *report}
	if len(report.Transcript) > 0 {
		if err := json.Unmarshal(report.Transcript, &out.Result); err != nil {
			return nil, err
		}
	}
	return out, nil
}

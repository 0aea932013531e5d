package service

import (
	"encoding/json"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/engine"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/logging"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/storage"
)

// BattleStrategy runs a full battle to completion and persists the
// transcript. The returned report carries the database ID; a persistence
// failure is logged but does not fail the simulation.
func BattleStrategy(repo storage.Repository, st game.BattleState, maxTurns int) (game.BattleResult, *game.BattleReport, error) {
	next, err := checkState(st)
	if err != nil {
		return game.BattleResult{}, nil, err
	}

	result := engine.RunBattle(next, maxTurns)

	report := &game.BattleReport{
		PlayerLead:   leadName(&next.Player),
		OpponentLead: leadName(&next.Opponent),
		Outcome:      string(result.Outcome),
		Turns:        len(result.Turns),
	}
	if transcript, err := json.Marshal(result); err == nil {
		report.Transcript = transcript
	}

	if repo != nil {
		if err := repo.SaveBattleReport(report); err != nil {
			logging.Error("failed to save battle report", err, logging.Fields{
				constants.LogFieldOutcome: report.Outcome,
			})
		} else {
			logging.Info("battle resolved", logging.Fields{
				constants.LogFieldBattleID: report.ID,
				constants.LogFieldOutcome:  report.Outcome,
				constants.LogFieldTurns:    report.Turns,
			})
		}
	}

	return result, report, nil
}

func leadName(t *game.Team) string {
	if active := t.Active(); active != nil {
		return active.Species.Name
	}
	return ""
}

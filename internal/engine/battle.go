package engine

import (
	"fmt"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

// ComputeTurn picks both sides' actions with the one-ply selector and
// resolves them. A side with nothing left to do forfeits the battle to
// the other side.
func ComputeTurn(st game.BattleState) game.TurnRecord {
	playerAction := BestAction(&st, game.SidePlayer)
	opponentAction := BestAction(&st, game.SideOpponent)

	if playerAction == nil {
		winner := game.SideOpponent
		return game.TurnRecord{
			Log:    []string{"Player has no valid moves or switches!"},
			Winner: &winner,
			State:  st.Clone(),
		}
	}
	if opponentAction == nil {
		winner := game.SidePlayer
		return game.TurnRecord{
			Log:    []string{"Opponent has no valid moves or switches!"},
			Winner: &winner,
			State:  st.Clone(),
		}
	}

	return ResolveTurn(st, playerAction, opponentAction)
}

// RunBattle plays the battle to completion, with both sides driven by the
// one-ply selector. It stops when a side has no usable combatants, when a
// resolved turn produces a winner, or after maxTurns turns, which counts
// as a draw.
func RunBattle(initial game.BattleState, maxTurns int) game.BattleResult {
	st := initial.Clone()
	result := game.BattleResult{
		Turns: make([]game.TurnRecord, 0, maxTurns),
		Log:   []string{},
	}

	for turn := 1; turn <= maxTurns; turn++ {
		if !st.Opponent.HasUsable() {
			result.Outcome = game.OutcomePlayerWins
			result.Log = append(result.Log, "Opponent has no more usable Pokémon!")
			return result
		}
		if !st.Player.HasUsable() {
			result.Outcome = game.OutcomeOpponentWins
			result.Log = append(result.Log, "Player has no more usable Pokémon!")
			return result
		}

		record := ComputeTurn(st)
		record.Turn = turn
		st = record.State.Clone()
		result.Turns = append(result.Turns, record)
		result.Log = append(result.Log, record.Log...)

		if record.Winner != nil {
			if *record.Winner == game.SidePlayer {
				result.Outcome = game.OutcomePlayerWins
			} else {
				result.Outcome = game.OutcomeOpponentWins
			}
			return result
		}
	}

	result.Outcome = game.OutcomeDraw
	result.Log = append(result.Log, fmt.Sprintf("Battle ended in a draw after %d turns.", maxTurns))
	return result
}

package engine

import (
	"math"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

// BestAction picks the best legal action for side, one ply deep.
//
// A fainted active combatant forces a switch to the first usable teammate
// in roster order. Otherwise every usable move is scored and the arg-max
// taken (lowest index wins ties); a switch is preferred only when the best
// switch target outscores the best move by more than switchMargin.
//
// A nil result means the side has no legal action at all, which the
// orchestrator treats as a loss.
func BestAction(st *game.BattleState, side game.Side) *game.Action {
	team := st.TeamFor(side)
	active := team.Active()

	if active == nil || active.Fainted() {
		for i := range team.Members {
			if i != team.ActiveIndex && !team.Members[i].Fainted() {
				return &game.Action{Type: game.ActionSwitch, Side: side, Index: i}
			}
		}
		return nil
	}

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i := range active.Moves {
		if active.Moves[i].RemainingPP <= 0 {
			continue
		}
		if s := ScoreMove(st, side, active.Moves[i]); s > bestScore {
			bestScore = s
			bestIdx = i
		}
	}

	swIdx, swScore := BestSwitch(st, side)

	if bestIdx == -1 {
		// Every move is out of PP; a switch is the only option left.
		if swIdx >= 0 {
			return &game.Action{Type: game.ActionSwitch, Side: side, Index: swIdx}
		}
		return nil
	}

	if swIdx >= 0 && swScore > bestScore+switchMargin {
		return &game.Action{Type: game.ActionSwitch, Side: side, Index: swIdx}
	}

	return &game.Action{Type: game.ActionAttack, Side: side, Index: bestIdx}
}

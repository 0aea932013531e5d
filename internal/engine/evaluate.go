package engine

import "github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"

// Heuristic scoring weights. The values are design choices tuned against
// the battle helper's recommendations; changing them changes which actions
// the selector and the search prefer.
const (
	stabBonus            = 20.0
	superEffectiveWeight = 30.0
	priorityBonus        = 40.0
	lowHPFraction        = 0.3
	resistWeight         = 30.0
	matchupWeight        = 20.0
	switchMargin         = 20.0
)

// ScoreMove rates one move of side's active combatant against the
// opposing active combatant. Higher is better for side.
func ScoreMove(st *game.BattleState, side game.Side, move game.Move) float64 {
	attacker := st.TeamFor(side).Active()
	defender := st.TeamFor(side.Opponent()).Active()
	if attacker == nil || defender == nil {
		return 0
	}

	score := 0.0

	lo, hi := DamageRange(move, attacker, defender, st.Weather)
	avg := float64(lo+hi) / 2
	if defender.MaxHP() > 0 {
		score += avg / float64(defender.MaxHP()) * 100
	}

	if attacker.Species.HasType(move.Type) {
		score += stabBonus
	}

	eff := Effectiveness(move.Type, defender.Species.Types)
	if eff > 1 {
		score += superEffectiveWeight * eff
	}

	// Priority moves are worth extra when the attacker is close to
	// fainting and may not survive to move at normal speed.
	if move.Priority > 0 && attacker.HPFraction() < lowHPFraction {
		score += priorityBonus
	}

	return score
}

// scoreSwitchTarget rates bringing in the team member at index idx:
// resisting the opposing active combatant's known moves and having types
// that hit it super-effectively both count in favor.
func scoreSwitchTarget(st *game.BattleState, side game.Side, idx int) float64 {
	team := st.TeamFor(side)
	candidate := &team.Members[idx]
	opponent := st.TeamFor(side.Opponent()).Active()
	if opponent == nil {
		return 0
	}

	score := 0.0
	for i := range opponent.Moves {
		eff := Effectiveness(opponent.Moves[i].Type, candidate.Species.Types)
		if eff < 1 {
			score += resistWeight * (1 - eff)
		}
	}
	for _, t := range candidate.Species.Types {
		eff := Effectiveness(t, opponent.Species.Types)
		if eff > 1 {
			score += matchupWeight * eff
		}
	}
	return score
}

// BestSwitch finds the best-scoring legal switch target for side: a
// non-fainted member other than the active one. It returns (-1, 0) when no
// legal target exists.
func BestSwitch(st *game.BattleState, side game.Side) (int, float64) {
	team := st.TeamFor(side)
	bestIdx := -1
	bestScore := 0.0
	for i := range team.Members {
		if i == team.ActiveIndex || team.Members[i].Fainted() {
			continue
		}
		s := scoreSwitchTarget(st, side, i)
		if bestIdx == -1 || s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	return bestIdx, bestScore
}

// ScoreAction rates a single legal action for side against the current
// state. Attack actions are scored by ScoreMove; switch actions by the
// incoming member's matchup.
func ScoreAction(st *game.BattleState, side game.Side, a game.Action) float64 {
	switch a.Type {
	case game.ActionAttack:
		active := st.TeamFor(side).Active()
		if active == nil || a.Index < 0 || a.Index >= len(active.Moves) {
			return 0
		}
		return ScoreMove(st, side, active.Moves[a.Index])
	case game.ActionSwitch:
		team := st.TeamFor(side)
		if a.Index < 0 || a.Index >= len(team.Members) {
			return 0
		}
		return scoreSwitchTarget(st, side, a.Index)
	}
	return 0
}

// EvaluatePosition scores the whole battle from the player's point of
// view: mean HP fraction of the player's roster minus the opponent's.
// Bounded in [-1, 1]; positive means the player is ahead.
func EvaluatePosition(st *game.BattleState) float64 {
	return st.Player.MeanHPFraction() - st.Opponent.MeanHPFraction()
}

package engine

import (
	"math"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

// The search looks several turns ahead with minimax and alpha-beta
// pruning. Only attack choices branch; switching is left to the one-ply
// selector's heuristic, which keeps the tree narrow. The outer driver is
// deliberately greedy: it reruns the full search once per requested turn,
// advancing only the maximizer's chosen action between runs, rather than
// expanding a joint two-sided game tree.

// FindBestActions returns a recommended action sequence for the player,
// up to depth actions long. Depth zero returns an empty sequence.
func FindBestActions(st game.BattleState, depth int) []game.Action {
	actions := make([]game.Action, 0, depth)
	current := st.Clone()
	for i := 0; i < depth; i++ {
		_, best := minimax(&current, depth, math.Inf(-1), math.Inf(1), true)
		if best == nil {
			break
		}
		actions = append(actions, *best)
		current = simulateAttack(current, *best)
	}
	return actions
}

// minimax explores the maximizer's (player's) attacks at maximizing plies
// and the opponent's at minimizing plies, alternating, with standard
// alpha-beta cutoffs. A ply with no attacks to enumerate terminates with
// the static evaluation.
func minimax(st *game.BattleState, depth int, alpha, beta float64, maximizing bool) (float64, *game.Action) {
	if depth == 0 {
		return EvaluatePosition(st), nil
	}

	side := game.SidePlayer
	if !maximizing {
		side = game.SideOpponent
	}
	active := st.TeamFor(side).Active()
	if active == nil || len(active.Moves) == 0 {
		return EvaluatePosition(st), nil
	}

	var best *game.Action
	if maximizing {
		maxEval := math.Inf(-1)
		for i := range active.Moves {
			next := simulateAttack(*st, game.Action{Type: game.ActionAttack, Side: side, Index: i})
			eval, _ := minimax(&next, depth-1, alpha, beta, false)
			if eval > maxEval {
				maxEval = eval
				best = &game.Action{Type: game.ActionAttack, Side: side, Index: i}
			}
			alpha = math.Max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval, best
	}

	minEval := math.Inf(1)
	for i := range active.Moves {
		next := simulateAttack(*st, game.Action{Type: game.ActionAttack, Side: side, Index: i})
		eval, _ := minimax(&next, depth-1, alpha, beta, true)
		if eval < minEval {
			minEval = eval
			best = &game.Action{Type: game.ActionAttack, Side: side, Index: i}
		}
		beta = math.Min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval, best
}

// simulateAttack applies just the damage of one attack to an independent
// copy of st. It is the search's cheap one-sided state advance; no
// ordering, PP or switch rules apply here.
func simulateAttack(st game.BattleState, a game.Action) game.BattleState {
	next := st.Clone()
	attacker := next.TeamFor(a.Side).Active()
	defender := next.TeamFor(a.Side.Opponent()).Active()
	if attacker == nil || defender == nil || a.Index < 0 || a.Index >= len(attacker.Moves) {
		return next
	}
	dmg := midpointDamage(attacker.Moves[a.Index], attacker, defender, next.Weather)
	defender.CurrentHP -= dmg
	if defender.CurrentHP < 0 {
		defender.CurrentHP = 0
	}
	return next
}

package engine

import (
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

func intp(n int) *int { return &n }

func testMove(name string, t game.ElementType, cat game.MoveCategory, power, priority int) game.Move {
	m := game.Move{Name: name, Type: t, Category: cat, PP: 10, RemainingPP: 10, Priority: priority}
	if power > 0 {
		m.Power = intp(power)
	}
	return m
}

func testCombatant(name string, types []game.ElementType, level int, stats game.Stats, moves ...game.Move) game.Combatant {
	sp := game.Species{Name: name, Types: types, Level: level, Stats: stats}
	return game.NewCombatant(sp, moves)
}

func evenStats(hp, speed int) game.Stats {
	return game.Stats{HP: hp, Attack: 100, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: speed}
}

func singleState(player, opponent game.Combatant) game.BattleState {
	return game.BattleState{
		Player:   game.Team{Members: []game.Combatant{player}},
		Opponent: game.Team{Members: []game.Combatant{opponent}},
	}
}

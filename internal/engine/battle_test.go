package engine

import (
	"testing"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

func TestComputeTurn_PlayerWithoutActionsLoses(t *testing.T) {
	down := testCombatant("Down", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	down.CurrentHP = 0
	enemy := testCombatant("Enemy", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	st := singleState(down, enemy)

	rec := ComputeTurn(st)
	if rec.Winner == nil || *rec.Winner != game.SideOpponent {
		t.Fatalf("winner = %v, want opponent", rec.Winner)
	}
	if !containsLog(rec.Log, "Player has no valid moves or switches!") {
		t.Fatalf("missing forfeit narration, log: %v", rec.Log)
	}
}

func TestComputeTurn_OpponentWithoutActionsLoses(t *testing.T) {
	hero := testCombatant("Hero", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	down := testCombatant("Down", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	down.CurrentHP = 0
	st := singleState(hero, down)

	rec := ComputeTurn(st)
	if rec.Winner == nil || *rec.Winner != game.SidePlayer {
		t.Fatalf("winner = %v, want player", rec.Winner)
	}
	if !containsLog(rec.Log, "Opponent has no valid moves or switches!") {
		t.Fatalf("missing forfeit narration, log: %v", rec.Log)
	}
}

func TestRunBattle_StrongerSideWins(t *testing.T) {
	strong := testCombatant("Strong", []game.ElementType{game.TypeFighting}, 100,
		game.Stats{HP: 300, Attack: 250, Defense: 150, SpAttack: 100, SpDefense: 150, Speed: 150},
		testMove("Close Combat", game.TypeFighting, game.CategoryPhysical, 120, 0))
	weak := testCombatant("Weak", []game.ElementType{game.TypeNormal}, 50, evenStats(120, 50),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))

	result := RunBattle(singleState(strong, weak), 50)
	if result.Outcome != game.OutcomePlayerWins {
		t.Fatalf("outcome = %v, want player win", result.Outcome)
	}
	if len(result.Turns) == 0 {
		t.Fatal("expected at least one resolved turn")
	}
	last := result.Turns[len(result.Turns)-1]
	if last.Winner == nil || *last.Winner != game.SidePlayer {
		t.Fatalf("final turn winner = %v, want player", last.Winner)
	}
}

func TestRunBattle_TurnCapIsDraw(t *testing.T) {
	// Ghost vs Ghost with Normal moves: total immunity both ways.
	a := testCombatant("Shade A", []game.ElementType{game.TypeGhost}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	b := testCombatant("Shade B", []game.ElementType{game.TypeGhost}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))

	result := RunBattle(singleState(a, b), 10)
	if result.Outcome != game.OutcomeDraw {
		t.Fatalf("outcome = %v, want draw", result.Outcome)
	}
	if len(result.Turns) != 10 {
		t.Fatalf("turns = %d, want 10", len(result.Turns))
	}
	if !containsLog(result.Log, "Battle ended in a draw after 10 turns.") {
		t.Fatalf("missing draw narration, log tail: %v", result.Log[len(result.Log)-3:])
	}
}

func TestRunBattle_PreTurnWipeFavorsPlayer(t *testing.T) {
	hero := testCombatant("Hero", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	down := testCombatant("Down", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	down.CurrentHP = 0

	result := RunBattle(singleState(hero, down), 50)
	if result.Outcome != game.OutcomePlayerWins {
		t.Fatalf("outcome = %v, want player win", result.Outcome)
	}
	if len(result.Turns) != 0 {
		t.Fatalf("turns = %d, want 0 when the battle is over before turn one", len(result.Turns))
	}
	if !containsLog(result.Log, "Opponent has no more usable Pokémon!") {
		t.Fatalf("missing wipe narration, log: %v", result.Log)
	}
}

func TestRunBattle_SimultaneousWipeFavorsPlayer(t *testing.T) {
	// Both sides are wiped before the loop acts. The opponent check runs
	// first, so the player takes the win.
	downA := testCombatant("Down A", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	downA.CurrentHP = 0
	downB := testCombatant("Down B", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	downB.CurrentHP = 0

	result := RunBattle(singleState(downA, downB), 50)
	if result.Outcome != game.OutcomePlayerWins {
		t.Fatalf("outcome = %v, want player win on simultaneous wipe", result.Outcome)
	}
}

func TestRunBattle_SwitchesInReplacementAfterFaint(t *testing.T) {
	lead := testCombatant("Lead", []game.ElementType{game.TypeNormal}, 50, evenStats(60, 50),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	reserve := testCombatant("Reserve", []game.ElementType{game.TypeNormal}, 100,
		game.Stats{HP: 300, Attack: 250, Defense: 200, SpAttack: 100, SpDefense: 200, Speed: 200},
		testMove("Mega Punch", game.TypeNormal, game.CategoryPhysical, 120, 0))
	enemy := testCombatant("Enemy", []game.ElementType{game.TypeNormal}, 100,
		game.Stats{HP: 200, Attack: 200, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: 150},
		testMove("Mega Punch", game.TypeNormal, game.CategoryPhysical, 120, 0))

	initial := game.BattleState{
		Player:   game.Team{Members: []game.Combatant{lead, reserve}},
		Opponent: game.Team{Members: []game.Combatant{enemy}},
	}

	result := RunBattle(initial, 50)
	if result.Outcome != game.OutcomePlayerWins {
		t.Fatalf("outcome = %v, want player win after switching in the reserve", result.Outcome)
	}
	if !containsLog(result.Log, "Go! Reserve!") {
		t.Fatalf("expected the reserve to be sent out, log: %v", result.Log)
	}
}

package engine

import (
	"testing"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

func TestFindBestActions_ZeroDepth(t *testing.T) {
	a := testCombatant("A", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	b := testCombatant("B", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	st := singleState(a, b)

	if got := FindBestActions(st, 0); len(got) != 0 {
		t.Fatalf("depth 0 returned %d actions, want 0", len(got))
	}
}

func TestFindBestActions_PrefersEffectiveMove(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeWater}, 50, evenStats(150, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0),
		testMove("Surf", game.TypeWater, game.CategorySpecial, 90, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeFire}, 50, evenStats(500, 100),
		testMove("Ember", game.TypeFire, game.CategorySpecial, 40, 0))
	st := singleState(attacker, defender)

	actions := FindBestActions(st, 2)
	if len(actions) == 0 {
		t.Fatal("expected at least one recommended action")
	}
	for i, a := range actions {
		if a.Type != game.ActionAttack {
			t.Fatalf("action %d: type = %v, want attack", i, a.Type)
		}
		if a.Side != game.SidePlayer {
			t.Fatalf("action %d: side = %v, want player", i, a.Side)
		}
		if a.Index != 1 {
			t.Fatalf("action %d: move index = %d, want 1 (Surf)", i, a.Index)
		}
	}
}

func TestFindBestActions_DoesNotMutateInput(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeNormal}, 50, evenStats(150, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeNormal}, 50, evenStats(150, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	st := singleState(attacker, defender)

	FindBestActions(st, 3)

	if st.Player.Active().CurrentHP != 150 || st.Opponent.Active().CurrentHP != 150 {
		t.Fatal("search mutated the input state")
	}
}

func TestFindBestActions_LengthBoundedByDepth(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeNormal}, 50, evenStats(150, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeNormal}, 50, evenStats(150, 100),
		testMove("Tackle", game.TypeNormal, game.CategoryPhysical, 40, 0))
	st := singleState(attacker, defender)

	for depth := 1; depth <= 4; depth++ {
		got := FindBestActions(st, depth)
		if len(got) > depth {
			t.Fatalf("depth %d: %d actions, want at most %d", depth, len(got), depth)
		}
	}
}

func TestMinimax_StaticEvalWhenNoMoves(t *testing.T) {
	mute := testCombatant("Mute", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100))
	foe := testCombatant("Foe", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100))
	foe.CurrentHP = 50
	st := singleState(mute, foe)

	score, action := minimax(&st, 3, -1e18, 1e18, true)
	if action != nil {
		t.Fatalf("expected no action for a moveless combatant, got %+v", action)
	}
	want := EvaluatePosition(&st)
	if score != want {
		t.Fatalf("score = %v, want static evaluation %v", score, want)
	}
}

func TestSimulateAttack_ClampsAtZero(t *testing.T) {
	strong := testCombatant("Strong", []game.ElementType{game.TypeNormal}, 100,
		game.Stats{HP: 300, Attack: 400, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: 100},
		testMove("Mega Punch", game.TypeNormal, game.CategoryPhysical, 120, 0))
	frail := testCombatant("Frail", []game.ElementType{game.TypeNormal}, 50, evenStats(10, 10))
	st := singleState(strong, frail)

	next := simulateAttack(st, game.Action{Type: game.ActionAttack, Side: game.SidePlayer, Index: 0})
	if hp := next.Opponent.Active().CurrentHP; hp != 0 {
		t.Fatalf("defender HP = %d, want 0", hp)
	}
	if st.Opponent.Active().CurrentHP != 10 {
		t.Fatal("simulateAttack mutated its input")
	}
}

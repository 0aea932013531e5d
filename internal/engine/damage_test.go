package engine

import (
	"testing"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

func TestStageMultiplier(t *testing.T) {
	cases := []struct {
		stage int
		want  float64
	}{
		{0, 1.0},
		{1, 1.5},
		{2, 2.0},
		{6, 4.0},
		{-1, 2.0 / 3.0},
		{-2, 0.5},
		{-6, 0.25},
	}
	for _, c := range cases {
		if got := StageMultiplier(c.stage); got != c.want {
			t.Errorf("StageMultiplier(%d) = %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestDamageRange_KnownVector(t *testing.T) {
	// Level 100, power 90, STAB, attack == defense:
	// base = (2*100/5+2)*90*1/50 + 2 = 77.6, *1.5 STAB = 116.4.
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeNormal}, 100, evenStats(300, 100),
		testMove("Body Slam", game.TypeNormal, game.CategoryPhysical, 90, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeFighting}, 100, evenStats(300, 100))

	lo, hi := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherNone)
	if lo != 98 || hi != 116 {
		t.Fatalf("DamageRange = (%d, %d), want (98, 116)", lo, hi)
	}
}

func TestDamageRange_StatusMoveDealsNothing(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Growl", game.TypeNormal, game.CategoryStatus, 0, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100))

	lo, hi := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherNone)
	if lo != 0 || hi != 0 {
		t.Fatalf("status move DamageRange = (%d, %d), want (0, 0)", lo, hi)
	}
}

func TestDamageRange_ImmunityDealsNothing(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeElectric}, 50, evenStats(100, 100),
		testMove("Thunderbolt", game.TypeElectric, game.CategorySpecial, 90, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeGround}, 50, evenStats(100, 100))

	lo, hi := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherNone)
	if lo != 0 || hi != 0 {
		t.Fatalf("immune DamageRange = (%d, %d), want (0, 0)", lo, hi)
	}
}

func TestDamageRange_MinNeverExceedsMax(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeWater}, 73, evenStats(211, 95),
		testMove("Surf", game.TypeWater, game.CategorySpecial, 90, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeFire, game.TypeFlying}, 68, evenStats(187, 110))

	for _, w := range []game.Weather{game.WeatherNone, game.WeatherSun, game.WeatherRain} {
		lo, hi := DamageRange(attacker.Moves[0], &attacker, &defender, w)
		if lo > hi {
			t.Errorf("weather %q: min %d > max %d", w, lo, hi)
		}
		if lo < 0 {
			t.Errorf("weather %q: negative min %d", w, lo)
		}
	}
}

func TestDamageRange_WeatherBoost(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeWater}, 50, evenStats(100, 100),
		testMove("Surf", game.TypeWater, game.CategorySpecial, 90, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100))

	_, clear := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherNone)
	_, rain := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherRain)
	_, sun := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherSun)

	if rain <= clear {
		t.Fatalf("rain should boost Water moves: clear=%d rain=%d", clear, rain)
	}
	if sun != clear {
		t.Fatalf("sun must not change Water moves: clear=%d sun=%d", clear, sun)
	}
}

func TestDamageRange_StagesApply(t *testing.T) {
	attacker := testCombatant("Attacker", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100),
		testMove("Tackle", game.TypeFighting, game.CategoryPhysical, 60, 0))
	defender := testCombatant("Defender", []game.ElementType{game.TypeNormal}, 50, evenStats(100, 100))

	_, neutral := DamageRange(attacker.Moves[0], &attacker, &defender, game.WeatherNone)

	boosted := attacker.Clone()
	boosted.Stages.Attack = 2
	_, atPlusTwo := DamageRange(boosted.Moves[0], &boosted, &defender, game.WeatherNone)
	if atPlusTwo <= neutral {
		t.Fatalf("+2 Attack should raise damage: neutral=%d boosted=%d", neutral, atPlusTwo)
	}

	bulky := defender.Clone()
	bulky.Stages.Defense = 2
	_, vsPlusTwo := DamageRange(attacker.Moves[0], &attacker, &bulky, game.WeatherNone)
	if vsPlusTwo >= neutral {
		t.Fatalf("+2 Defense should lower damage: neutral=%d reduced=%d", neutral, vsPlusTwo)
	}
}

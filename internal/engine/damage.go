package engine

import (
	"math"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

// StageMultiplier converts a stat stage in [-6,+6] to its multiplier:
// +6 -> 4.0, 0 -> 1.0, -6 -> 0.25.
func StageMultiplier(stage int) float64 {
	if stage >= 0 {
		return float64(stage+2) / 2
	}
	return 2 / float64(-stage+2)
}

// weatherBoostType returns the move type that gets a 1.5x damage bonus
// under the given weather, if any.
func weatherBoostType(w game.Weather) (game.ElementType, bool) {
	switch w {
	case game.WeatherSun:
		return game.TypeFire, true
	case game.WeatherRain:
		return game.TypeWater, true
	}
	return "", false
}

// DamageRange computes the [min,max] damage a move deals from attacker to
// defender, modelling the canonical 85-100% roll spread. Status moves and
// immune matchups deal (0,0). Stat stages apply to the chosen attack and
// defense stats before the base formula. Callers must have validated that
// stats are positive.
func DamageRange(move game.Move, attacker, defender *game.Combatant, weather game.Weather) (int, int) {
	if move.Power == nil || move.Category == game.CategoryStatus {
		return 0, 0
	}

	var atk, def float64
	if move.Category == game.CategoryPhysical {
		atk = float64(attacker.Species.Stats.Attack) * StageMultiplier(attacker.Stages.Attack)
		def = float64(defender.Species.Stats.Defense) * StageMultiplier(defender.Stages.Defense)
	} else {
		atk = float64(attacker.Species.Stats.SpAttack) * StageMultiplier(attacker.Stages.SpAttack)
		def = float64(defender.Species.Stats.SpDefense) * StageMultiplier(defender.Stages.SpDefense)
	}

	level := float64(attacker.Species.Level)
	power := float64(*move.Power)
	base := (2*level/5+2)*power*atk/def/50 + 2

	stab := 1.0
	if attacker.Species.HasType(move.Type) {
		stab = 1.5
	}
	mod := stab * Effectiveness(move.Type, defender.Species.Types)
	if boosted, ok := weatherBoostType(weather); ok && boosted == move.Type {
		mod *= 1.5
	}

	return int(math.Floor(base * mod * 0.85)), int(math.Floor(base * mod))
}

// midpointDamage is the deterministic damage value the resolver and the
// search apply: the midpoint of the min/max roll range.
func midpointDamage(move game.Move, attacker, defender *game.Combatant, weather game.Weather) int {
	lo, hi := DamageRange(move, attacker, defender, weather)
	return (lo + hi) / 2
}

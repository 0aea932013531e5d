package service

import (
	"errors"
	"fmt"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/engine"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

var ErrInvalidBattleState = errors.New("invalid battle state")

// checkState validates an incoming battle state and fills derived
// defaults (remaining PP). It returns a normalized copy; the caller's
// state is untouched.
func checkState(st game.BattleState) (game.BattleState, error) {
	next := st.Clone()
	next.Normalize()
	if err := next.Validate(); err != nil {
		return game.BattleState{}, fmt.Errorf("%w: %v", ErrInvalidBattleState, err)
	}
	return next, nil
}

// SimulateTurn resolves a single turn with both sides picking their own
// best action.
func SimulateTurn(st game.BattleState) (game.TurnRecord, error) {
	next, err := checkState(st)
	if err != nil {
		return game.TurnRecord{}, err
	}
	rec := engine.ComputeTurn(next)
	rec.Turn = 1
	return rec, nil
}

package service

import (
	"errors"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/engine"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

const (
	MinSearchDepth = 1
	MaxSearchDepth = 8
)

var ErrInvalidSearchDepth = errors.New("search depth must be between 1 and 8")

// SearchActions recommends an action sequence for the player by looking
// depth turns ahead. A depth of 0 falls back to defaultDepth.
func SearchActions(st game.BattleState, depth, defaultDepth int) ([]game.Action, error) {
	if depth == 0 {
		depth = defaultDepth
	}
	if depth < MinSearchDepth || depth > MaxSearchDepth {
		return nil, ErrInvalidSearchDepth
	}
	next, err := checkState(st)
	if err != nil {
		return nil, err
	}
	return engine.FindBestActions(next, depth), nil
}

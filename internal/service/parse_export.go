package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/showdown"
)

var ErrEmptyExport = errors.New("export text is empty")

// ParseExport turns one Showdown export block into a ready-to-battle
// combatant, resolving species and move names through dex.
func ParseExport(ctx context.Context, dex showdown.Pokedex, exportText string) (game.Combatant, error) {
	if strings.TrimSpace(exportText) == "" {
		return game.Combatant{}, ErrEmptyExport
	}
	return showdown.ParseExport(ctx, dex, exportText)
}

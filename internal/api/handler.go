package api

import (
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/config"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/showdown"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/storage"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo storage.Repository
	dex  showdown.Pokedex
	cfg  *config.LoadedConfig
}

// NewBattleHandler creates a BattleHandler with the given repository,
// species/move database and runtime configuration.
func NewBattleHandler(repo storage.Repository, dex showdown.Pokedex, cfg *config.LoadedConfig) *BattleHandler {
	return &BattleHandler{repo: repo, dex: dex, cfg: cfg}
}

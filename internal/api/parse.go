package api

import (
	"errors"
	"net/http"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/logging"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/pokeapi"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/service"
	"github.com/gin-gonic/gin"
)

type parseShowdownRequest struct {
	ExportText   string `json:"export_text"`
	TeamPosition *int   `json:"team_position,omitempty"`
}

type parseShowdownResponse struct {
	Combatant    interface{} `json:"combatant"`
	TeamPosition *int        `json:"team_position,omitempty"`
}

// ParseShowdown converts a Showdown export block into a combatant with
// computed stats and resolved moves.
func (h *BattleHandler) ParseShowdown(c *gin.Context) {
	var req parseShowdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	combatant, err := service.ParseExport(c.Request.Context(), h.dex, req.ExportText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyExport):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrEmptyExport})
		case errors.Is(err, pokeapi.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: err.Error()})
		default:
			logging.Error("failed to parse export", err, nil)
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFailedParseExport, constants.JSONKeyMessage: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, parseShowdownResponse{Combatant: combatant, TeamPosition: req.TeamPosition})
}

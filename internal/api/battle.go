package api

import (
	"errors"
	"net/http"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/logging"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/service"
	"github.com/gin-gonic/gin"
)

// SimulateTurn resolves one turn of the posted battle state with both
// sides picking their own best action.
func (h *BattleHandler) SimulateTurn(c *gin.Context) {
	var st game.BattleState
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	rec, err := service.SimulateTurn(st)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleState, constants.JSONKeyMessage: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type searchRequest struct {
	State game.BattleState `json:"state"`
	Depth int              `json:"depth"`
}

type searchResponse struct {
	Actions []game.Action `json:"actions"`
	Depth   int           `json:"depth"`
}

// Search recommends an action sequence by looking several turns ahead.
// Depth defaults to the configured search depth when omitted.
func (h *BattleHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	depth := req.Depth
	if depth == 0 {
		depth = h.cfg.SearchDepth
	}
	logging.Debug("search requested", logging.Fields{constants.LogFieldDepth: depth})
	actions, err := service.SearchActions(req.State, depth, h.cfg.SearchDepth)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSearchDepth):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSearchDepth})
		default:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleState, constants.JSONKeyMessage: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, searchResponse{Actions: actions, Depth: depth})
}

// BattleStrategy runs the posted battle state to completion and persists
// the transcript.
func (h *BattleHandler) BattleStrategy(c *gin.Context) {
	var st game.BattleState
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	result, report, err := service.BattleStrategy(h.repo, st, h.cfg.MaxTurns)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBattleState) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleState, constants.JSONKeyMessage: err.Error()})
			return
		}
		logging.Error("failed to resolve battle", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedResolveBattle})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"battle_id": report.ID,
		"result":    result,
	})
}

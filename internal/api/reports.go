package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/service"
	"github.com/gin-gonic/gin"
)

// ListBattles returns recent battle reports, newest first, without
// transcripts.
func (h *BattleHandler) ListBattles(c *gin.Context) {
	reports, err := service.ListBattles(h.repo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(reports)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetBattle returns one persisted battle with its full transcript.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("battleID"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}

	stored, err := service.GetBattle(h.repo, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBattleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(stored)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	c.JSON(http.StatusOK, out)
}

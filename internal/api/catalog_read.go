package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/storage"
)

// ListSpecies returns every species in the catalog.
func (h *CatalogHandler) ListSpecies(c *gin.Context) {
	species, err := h.repo.ListSpecies()
	if err != nil {
		logging.Error("list species failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSpecies})
		return
	}
	h.respond(c, species)
}

// GetSpecies returns one species with the attack set of its element.
func (h *CatalogHandler) GetSpecies(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSpeciesID})
		return
	}
	s, err := h.repo.GetSpeciesByID(uint(id))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSpeciesNotFound})
		return
	case err != nil:
		logging.Error("get species failed", err, logging.Fields{constants.LogFieldKey: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSpecies})
		return
	}
	set, err := h.repo.GetAttackSet(s.Element)
	if err != nil {
		logging.Error("get attack set failed", err, logging.Fields{constants.LogFieldElement: s.Element})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMoves})
		return
	}
	h.respond(c, struct {
		*game.Species
		Attacks [game.MaxAttacks]game.Attack `json:"attacks"`
	}{s, set})
}

// ListMoves returns all moves, optionally filtered by ?element=.
func (h *CatalogHandler) ListMoves(c *gin.Context) {
	var element game.Element
	if s := c.Query("element"); s != "" {
		el, ok := game.ParseElement(s)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrUnknownElementFmt, s)})
			return
		}
		element = el
	}
	moves, err := h.repo.ListMoves(element)
	if err != nil {
		logging.Error("list moves failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMoves})
		return
	}
	h.respond(c, moves)
}

// Effectiveness reports the multiplier of an attack element against a
// target element: ?attack=fire&target=water.
func (h *CatalogHandler) Effectiveness(c *gin.Context) {
	atkParam, targetParam := c.Query("attack"), c.Query("target")
	if atkParam == "" || targetParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrElementParamRequired})
		return
	}
	attack, ok := game.ParseElement(atkParam)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrUnknownElementFmt, atkParam)})
		return
	}
	target, ok := game.ParseElement(targetParam)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrUnknownElementFmt, targetParam)})
		return
	}
	m := engine.EffectivenessMultiplier(attack, target)
	c.JSON(http.StatusOK, gin.H{
		"attack":     attack,
		"target":     target,
		"multiplier": m,
		"tier":       engine.TierOf(m),
	})
}

func (h *CatalogHandler) respond(c *gin.Context, v interface{}) {
	out, err := MarshalIntoSnakeTimestamps(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncode, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

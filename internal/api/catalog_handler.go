package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/storage"
)

// CatalogHandler groups the read-only catalog HTTP handlers.
type CatalogHandler struct {
	repo storage.Repository
}

func NewCatalogHandler(repo storage.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// NewRouter registers every catalog route on a fresh gin engine.
func NewRouter(h *CatalogHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	apiRoutes.Use(cacheControl())
	{
		apiRoutes.GET(constants.RouteSpecies, h.ListSpecies)
		apiRoutes.GET(constants.RouteSpeciesByID, h.GetSpecies)
		apiRoutes.GET(constants.RouteMoves, h.ListMoves)
		apiRoutes.GET(constants.RouteEffectiveness, h.Effectiveness)
		apiRoutes.GET(constants.RouteVersion, Version)
	}
	return router
}

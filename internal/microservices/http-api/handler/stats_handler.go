package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "stats.getViewStats", Tier: middleware.TierAdmin, Kind: registry.Query, Handler: h.GetViewStats},
	}
}

func (h *StatsHandler) GetViewStats(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.svc.GetViewStats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

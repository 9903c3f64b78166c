package handler

import (
	"net/http"

	"placehub/internal/metrics"
	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"
	"placehub/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type SharedFavoriteHandler struct {
	svc     service.SharedFavoriteService
	limiter *ratelimit.KeyedRateLimiter
}

func NewSharedFavoriteHandler(svc service.SharedFavoriteService, limiter *ratelimit.KeyedRateLimiter) *SharedFavoriteHandler {
	return &SharedFavoriteHandler{svc: svc, limiter: limiter}
}

func (h *SharedFavoriteHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "sharedFavorites.create", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.Create},
		{Name: "sharedFavorites.getByShareId", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.GetByShareID},
		{Name: "sharedFavorites.incrementView", Tier: middleware.TierPublic, Kind: registry.Mutation, Handler: h.IncrementView,
			Middleware: []gin.HandlerFunc{middleware.RateLimit(h.limiter)}},
		{Name: "sharedFavorites.listMine", Tier: middleware.TierProtected, Kind: registry.Query, Handler: h.ListMine},
	}
}

// Create snapshots the given places into a new list and returns its share id.
func (h *SharedFavoriteHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateSharedListDTO
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.svc.Create(ctx, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByShareID returns null for an unknown share id.
func (h *SharedFavoriteHandler) GetByShareID(c *gin.Context) {
	var req dto.ShareIDRequest
	if !bindQuery(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	detail, err := h.svc.GetByShareID(ctx, req.ShareID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *SharedFavoriteHandler) IncrementView(c *gin.Context) {
	var req dto.ShareIDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.IncrementView(ctx, req.ShareID); err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordView("shared_list")
	respondSuccess(c)
}

func (h *SharedFavoriteHandler) ListMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	lists, err := h.svc.ListMine(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	svc service.FavoriteService
}

func NewFavoriteHandler(svc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// Every favorites procedure acts on the caller's own list.
func (h *FavoriteHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "favorites.list", Tier: middleware.TierProtected, Kind: registry.Query, Handler: h.List},
		{Name: "favorites.isFavorite", Tier: middleware.TierProtected, Kind: registry.Query, Handler: h.IsFavorite},
		{Name: "favorites.add", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.Add},
		{Name: "favorites.remove", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.Remove},
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	favorites, err := h.svc.List(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.PlaceIDRequest
	if !bindQuery(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	exists, err := h.svc.IsFavorite(ctx, userID, req.PlaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}

// Add is idempotent: favoriting twice leaves one row.
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.PlaceIDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Add(ctx, userID, req.PlaceID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.PlaceIDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Remove(ctx, userID, req.PlaceID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

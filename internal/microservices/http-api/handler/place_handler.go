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

type PlaceHandler struct {
	svc     service.PlaceService
	limiter *ratelimit.KeyedRateLimiter
}

func NewPlaceHandler(svc service.PlaceService, limiter *ratelimit.KeyedRateLimiter) *PlaceHandler {
	return &PlaceHandler{svc: svc, limiter: limiter}
}

func (h *PlaceHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "places.list", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.List},
		{Name: "places.getById", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.GetByID},
		{Name: "places.incrementView", Tier: middleware.TierPublic, Kind: registry.Mutation, Handler: h.IncrementView,
			Middleware: []gin.HandlerFunc{middleware.RateLimit(h.limiter)}},
		{Name: "places.create", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Create},
		{Name: "places.update", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Update},
		{Name: "places.delete", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Delete},

		{Name: "placeImages.list", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.ListImages},
		{Name: "placeImages.add", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.AddImage},
		{Name: "placeImages.delete", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.DeleteImage},
	}
}

// List places with avgRating and reviewCount, newest first
func (h *PlaceHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	places, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// GetByID returns null for an unknown id.
func (h *PlaceHandler) GetByID(c *gin.Context) {
	var req dto.IDRequest
	if !bindQuery(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	place, err := h.svc.GetByID(ctx, req.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) IncrementView(c *gin.Context) {
	var req dto.PlaceIDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.IncrementView(ctx, req.PlaceID); err != nil {
		respondError(c, err)
		return
	}
	metrics.RecordView("place")
	respondSuccess(c)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req dto.CreatePlaceDTO
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	var req dto.UpdatePlaceDTO
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Update(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, req.ID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *PlaceHandler) ListImages(c *gin.Context) {
	var req dto.PlaceIDRequest
	if !bindQuery(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	images, err := h.svc.ListImages(ctx, req.PlaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *PlaceHandler) AddImage(c *gin.Context) {
	var req dto.AddPlaceImageDTO
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := h.svc.AddImage(ctx, req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *PlaceHandler) DeleteImage(c *gin.Context) {
	var req dto.IDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.DeleteImage(ctx, req.ID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

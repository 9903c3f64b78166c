package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "reviews.getByPlaceId", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.GetByPlaceID},
		// list, listAll and getAllForAdmin are aliases kept for older clients
		{Name: "reviews.list", Tier: middleware.TierAdmin, Kind: registry.Query, Handler: h.ListAll},
		{Name: "reviews.listAll", Tier: middleware.TierAdmin, Kind: registry.Query, Handler: h.ListAll},
		{Name: "reviews.getAllForAdmin", Tier: middleware.TierAdmin, Kind: registry.Query, Handler: h.ListAll},
		{Name: "reviews.create", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.Create},
		{Name: "reviews.delete", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Delete},
	}
}

func (h *ReviewHandler) GetByPlaceID(c *gin.Context) {
	var req dto.PlaceIDRequest
	if !bindQuery(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reviews, err := h.svc.GetByPlaceID(ctx, req.PlaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	reviews, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewDTO
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, userID, req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
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

package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "categories.list", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.List},
		{Name: "categories.create", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Create},
		{Name: "categories.update", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Update},
		{Name: "categories.delete", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Delete},
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	categories, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryDTO
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

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryDTO
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

// Delete answers 409 while places still use the category.
func (h *CategoryHandler) Delete(c *gin.Context) {
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

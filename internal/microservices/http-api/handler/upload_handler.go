package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	svc service.UploadService
}

func NewUploadHandler(svc service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

func (h *UploadHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "upload.file", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.UploadFile},
	}
}

// UploadFile stores a base64 payload and returns its public URL.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	var req dto.UploadFileDTO
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.svc.Upload(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "notifications.list", Tier: middleware.TierProtected, Kind: registry.Query, Handler: h.List},
		{Name: "notifications.unreadCount", Tier: middleware.TierProtected, Kind: registry.Query, Handler: h.UnreadCount},
		{Name: "notifications.markAsRead", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.MarkAsRead},
		{Name: "notifications.markAllAsRead", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.MarkAllAsRead},
		{Name: "notifications.delete", Tier: middleware.TierProtected, Kind: registry.Mutation, Handler: h.Delete},
		{Name: "notifications.create", Tier: middleware.TierAdmin, Kind: registry.Mutation, Handler: h.Create},
	}
}

// List returns the caller's notifications plus broadcasts, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	notifications, err := h.svc.List(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	count, err := h.svc.UnreadCount(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.NotificationIDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.MarkAsRead(ctx, userID, req.NotificationID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.MarkAllAsRead(ctx, userID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.NotificationIDRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, userID, req.NotificationID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

// Create sends a notification to one user, or to everyone when userId is omitted.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationDTO
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

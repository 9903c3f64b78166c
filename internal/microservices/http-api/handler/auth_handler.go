package handler

import (
	"net/http"

	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Procedures() []registry.Procedure {
	return []registry.Procedure{
		{Name: "auth.me", Tier: middleware.TierPublic, Kind: registry.Query, Handler: h.Me},
		{Name: "auth.logout", Tier: middleware.TierPublic, Kind: registry.Mutation, Handler: h.Logout},
	}
}

// Me returns the signed-in user, or null for anonymous callers.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// Logout revokes the presented token. Anonymous callers get success too.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.authService.Logout(ctx, middleware.BearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c)
}

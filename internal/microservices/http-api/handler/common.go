package handler

import (
	"context"
	"net/http"
	"time"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/dto"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func respondError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

func respondInvalid(c *gin.Context, err error) {
	middleware.WriteError(c, apperror.Validation(registry.ValidationMessage(err)))
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK())
}

// bindQuery binds query-string input for a query procedure; on failure it
// has already written the 400 response.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondInvalid(c, err)
		return false
	}
	return true
}

// bindJSON is bindQuery for mutation bodies.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondInvalid(c, err)
		return false
	}
	return true
}

// callerID returns the signed-in user's id. Guards run first, so a missing
// identity here is answered with 401 like the guard would.
func callerID(c *gin.Context) (int64, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, apperror.ErrUnauthenticated)
		return 0, false
	}
	return user.ID, true
}

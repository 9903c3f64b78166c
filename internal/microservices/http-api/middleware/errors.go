package middleware

import (
	"placehub/internal/apperror"

	"github.com/gin-gonic/gin"
)

// WriteError renders err as {"error": message, "code": code} with the matching status.
func WriteError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.Code == apperror.CodeInternal {
		// keep internals out of the response
		_ = c.Error(err)
		c.JSON(appErr.HTTPStatus(), gin.H{"error": apperror.ErrInternal.Message, "code": appErr.Code})
		return
	}
	c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message, "code": appErr.Code})
}

// AbortWithError writes the error and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	WriteError(c, err)
	c.Abort()
}

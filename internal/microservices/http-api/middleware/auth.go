package middleware

import (
	"strings"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by Identify.
const (
	ContextUser   = "user"
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Tier is the access level a procedure requires.
type Tier int

const (
	TierPublic Tier = iota
	TierProtected
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierProtected:
		return "protected"
	case TierAdmin:
		return "admin"
	default:
		return "public"
	}
}

// Identify resolves the bearer token into a user and stores it on the context.
// It never rejects: a missing, invalid or revoked token just leaves the caller anonymous.
func Identify(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err == nil && user != nil {
			SetUser(c, user)
		}

		c.Next()
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>", or "".
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2) // 0 is Bearer, 1 is token
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SetUser stores the resolved identity for guards and handlers.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(ContextUser, user)
	c.Set(ContextUserID, user.ID)
	c.Set(ContextRole, user.Role)
}

// CurrentUser returns the signed-in user, or nil for anonymous callers.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// RequireAuth aborts with 401 when no identity was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			AbortWithError(c, apperror.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the caller has the role. It expects RequireAuth to run first.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			AbortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireAdmin is a convenience wrapper for RequireRole("admin")
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

var (
	protectedChain = []gin.HandlerFunc{RequireAuth()}
	adminChain     = []gin.HandlerFunc{RequireAuth(), RequireAdmin()}
)

// Guards returns the guard chain for a tier. Every admin procedure shares the same chain.
func Guards(tier Tier) []gin.HandlerFunc {
	switch tier {
	case TierProtected:
		return protectedChain
	case TierAdmin:
		return adminChain
	default:
		return nil
	}
}

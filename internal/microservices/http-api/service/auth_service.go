package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"placehub/internal/config"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevokedToken = errors.New("token has been revoked")
)

// signInRefreshInterval is how stale last_signed_in may get before a request
// writes the user row again.
const signInRefreshInterval = 5 * time.Minute

// SessionClaims are issued by the OAuth provider (or placehub-cli token) and
// identify the caller by open id.
type SessionClaims struct {
	OpenID      string  `json:"open_id"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	LoginMethod *string `json:"login_method,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Authenticate resolves a bearer token into the signed-in user,
	// creating or refreshing the user row.
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
	IssueToken(claims SessionClaims) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	Logout(ctx context.Context, tokenString string) error
}

type authService struct {
	userRepo       repository.UserRepository
	revokedRepo    repository.RevokedTokenRepository
	jwtSecret      []byte
	accessTokenTTL time.Duration
	ownerOpenID    string
	logger         *slog.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	revokedRepo repository.RevokedTokenRepository,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		revokedRepo:    revokedRepo,
		jwtSecret:      []byte(cfg.JWTSecret),
		accessTokenTTL: cfg.AccessTokenTTL,
		ownerOpenID:    cfg.OwnerOpenID,
		logger:         logger,
	}
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revokedRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		// a denylist outage must not lock everyone out
		s.logger.Warn("revocation check failed", "error", err)
	} else if revoked {
		return nil, ErrRevokedToken
	}

	user := &models.User{
		OpenID:       claims.OpenID,
		Name:         claims.Name,
		Email:        claims.Email,
		LoginMethod:  claims.LoginMethod,
		LastSignedIn: time.Now(),
	}
	if s.ownerOpenID != "" && claims.OpenID == s.ownerOpenID {
		user.Role = models.RoleAdmin
	}

	// a lookup failure falls through to the upsert, which reports its own error
	if stored, err := s.userRepo.FindByOpenID(ctx, claims.OpenID); err == nil && upToDate(stored, user) {
		return stored, nil
	}
	return s.userRepo.Upsert(ctx, user)
}

// upToDate reports whether the stored row already carries the incoming profile
// and was signed in recently enough that the upsert can be skipped.
func upToDate(stored, incoming *models.User) bool {
	if stored == nil || incoming.LastSignedIn.Sub(stored.LastSignedIn) >= signInRefreshInterval {
		return false
	}
	if incoming.Role != "" && stored.Role != incoming.Role {
		return false
	}
	return sameOptional(stored.Name, incoming.Name) &&
		sameOptional(stored.Email, incoming.Email) &&
		sameOptional(stored.LoginMethod, incoming.LoginMethod)
}

// sameOptional treats an absent incoming value as unchanged.
func sameOptional(stored, incoming *string) bool {
	return incoming == nil || (stored != nil && *stored == *incoming)
}

// IssueToken signs claims with HS256, filling in jti, iat and exp when unset.
func (s *authService) IssueToken(claims SessionClaims) (string, error) {
	if claims.OpenID == "" {
		return "", fmt.Errorf("%w: open_id is required", ErrInvalidToken)
	}
	now := time.Now()
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.accessTokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.OpenID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Logout denylists the token until it expires. Invalid tokens are already
// unusable, so logging out with one succeeds.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.revokedRepo.Revoke(ctx, claims.ID, ttl)
}

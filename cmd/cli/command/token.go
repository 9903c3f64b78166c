package command

import (
	"fmt"
	"log/slog"
	"time"

	"placehub/internal/microservices/http-api/repository"
	"placehub/internal/microservices/http-api/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// tokenCmd signs a session token the API accepts, e.g.
//
//	placehub-cli token --open-id owner-1 --name "Local Admin"
//
// Pair it with OWNER_OPEN_ID to get an admin session.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a session token for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		openID, _ := cmd.Flags().GetString("open-id")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}

		// signing needs no stores
		auth := service.NewAuthService(repository.NewUserRepository(nil), repository.NewRevokedTokenRepository(nil), cfg, slog.Default())

		token, err := auth.IssueToken(sessionClaims(openID, name, email, ttl))
		if err != nil {
			return fmt.Errorf("could not sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func sessionClaims(openID, name, email string, ttl time.Duration) service.SessionClaims {
	claims := service.SessionClaims{
		OpenID:      openID,
		Name:        optional(name),
		Email:       optional(email),
		LoginMethod: optional("dev"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: openID,
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return claims
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("open-id", "", "identity key of the user")
	tokenCmd.Flags().String("name", "", "display name")
	tokenCmd.Flags().String("email", "", "email address")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime, defaults to ACCESS_TOKEN_TTL")
	tokenCmd.MarkFlagRequired("open-id")
}

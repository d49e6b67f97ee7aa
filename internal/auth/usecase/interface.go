package usecase

import (
	"strings"

	authdomain "wedding-planner-backend/internal/auth/domain"
	authdto "wedding-planner-backend/internal/auth/dto"
)

// AllowPolicy decides whether an email address may sign in.
type AllowPolicy func(email string) bool

// NewAllowPolicy builds a case-insensitive allowlist policy. An empty list
// denies everyone; the deployment must name who may sign in.
func NewAllowPolicy(emails []string) AllowPolicy {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = struct{}{}
		}
	}
	return func(email string) bool {
		_, ok := allowed[strings.ToLower(strings.TrimSpace(email))]
		return ok
	}
}

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// GoogleSignIn verifies a Google ID token, applies the allowlist, and
	// issues a token pair. The Gmail access token is kept on the user row.
	GoogleSignIn(req *authdto.GoogleSignInRequest) (*authdto.TokenResponse, error)
	// RefreshToken exchanges a valid refresh token for a new pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	// Logout revokes a refresh token
	Logout(refreshToken string) error
	// ValidateToken parses an access token and loads its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}

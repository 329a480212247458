package ports

import (
	"context"

	"github.com/marwa1454/formulaire/internal/core/domain"
)

// TokenClaims is the identity a verified token asserts.
type TokenClaims struct {
	Username string
	Role     string
}

// TokenVerifier checks a bearer token's signature and expiry and returns
// the embedded identity. Used by the auth middleware.
type TokenVerifier interface {
	VerifyToken(token string) (*TokenClaims, error)
}

// AuthService authenticates credentials and issues signed bearer tokens.
// Every authentication failure surfaces as domain.ErrInvalidCredentials
// regardless of root cause.
type AuthService interface {
	TokenVerifier
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, username string) (*domain.User, error)
}

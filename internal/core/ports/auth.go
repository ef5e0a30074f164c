package ports

import (
	"context"
	"time"

	"github.com/starcode/library-api/internal/core/domain"
)

// AuthRepository defines read access to user records. Users are
// provisioned out of band; this service never writes them.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenPair is the envelope returned to clients after signin/refresh.
type TokenPair struct {
	Username      string
	Authenticated bool
	Created       time.Time
	Expiration    time.Time
	AccessToken   string
	RefreshToken  string
}

// TokenClaims is the verified content of an access or refresh token.
type TokenClaims struct {
	Username string
	Roles    []string
}

// TokenProvider issues and verifies compact signed tokens. Validity is
// purely signature + expiry; user state is never re-checked, so a
// disabled or deleted user keeps a working access token until it
// expires.
type TokenProvider interface {
	CreateTokenPair(username string, roles []string) (*TokenPair, error)
	// Refresh verifies a refresh token and mints a brand-new pair from
	// its embedded subject and roles.
	Refresh(refreshToken string) (*TokenPair, error)
	// Parse verifies an access token and returns its claims.
	Parse(accessToken string) (*TokenClaims, error)
}

// AuthService orchestrates credential checks and token issuance.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, username, refreshToken string) (*TokenPair, error)
}

// SigninThrottle guards the signin endpoint against brute forcing.
type SigninThrottle interface {
	// Blocked reports whether the username has exhausted its attempts.
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

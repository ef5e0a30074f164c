package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 3 * time.Hour
)

// tokenClaims is the JWT payload for both token kinds. Typ separates
// access from refresh so one can never stand in for the other.
type tokenClaims struct {
	Roles []string `json:"roles"`
	Typ   string   `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed access/refresh pairs.
// Tokens are never stored server-side; validity is signature + expiry
// only.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// CreateTokenPair mints a fresh access token and companion refresh
// token for the given subject.
func (s *TokenService) CreateTokenPair(username string, roles []string) (*ports.TokenPair, error) {
	now := time.Now().UTC()
	expiration := now.Add(s.accessTTL)

	access, err := s.sign(username, roles, tokenTypeAccess, now, expiration)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(username, roles, tokenTypeRefresh, now, now.Add(s.refreshTTL))
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		Username:      username,
		Authenticated: true,
		Created:       now,
		Expiration:    expiration,
		AccessToken:   access,
		RefreshToken:  refresh,
	}, nil
}

// Refresh verifies a refresh token and mints a brand-new pair from its
// embedded subject and roles, without touching persistence.
func (s *TokenService) Refresh(refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.verify(refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return s.CreateTokenPair(claims.Subject, claims.Roles)
}

// Parse verifies an access token and returns its claims.
func (s *TokenService) Parse(accessToken string) (*ports.TokenClaims, error) {
	claims, err := s.verify(accessToken, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	return &ports.TokenClaims{Username: claims.Subject, Roles: claims.Roles}, nil
}

func (s *TokenService) sign(username string, roles []string, typ string, issuedAt, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		Roles: roles,
		Typ:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) verify(token, wantTyp string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Typ != wantTyp {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

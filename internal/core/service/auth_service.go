package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

// AuthService implements signin and token refresh.
type AuthService struct {
	repo     ports.AuthRepository
	tokens   ports.TokenProvider
	throttle ports.SigninThrottle
	logger   zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenProvider, throttle ports.SigninThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

// SignIn verifies the credentials and returns a fresh token pair.
// Unknown user and wrong password both surface ErrInvalidCredentials so
// the response never confirms whether a username exists; the real cause
// is only logged.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Msg("signin throttle unavailable, continuing without it")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			s.logger.Debug().Str("username", username).Msg("signin for unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Enabled {
		s.recordFailure(ctx, username)
		s.logger.Debug().Str("username", username).Msg("signin for disabled user")
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		s.logger.Debug().Str("username", username).Msg("signin with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset signin throttle")
		}
	}

	pair, err := s.tokens.CreateTokenPair(user.Username, user.Roles)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user signed in")
	return pair, nil
}

// Refresh re-checks the user still exists and that the refresh token
// was minted for the same username, then delegates to the token
// provider for a brand-new pair.
func (s *AuthService) Refresh(ctx context.Context, username, refreshToken string) (*ports.TokenPair, error) {
	if username == "" || refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}

	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return nil, err
	}

	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	if pair.Username != username {
		s.logger.Warn().
			Str("path_username", username).
			Str("token_subject", pair.Username).
			Msg("refresh token subject mismatch")
		return nil, domain.ErrInvalidToken
	}

	s.logger.Info().Str("username", username).Msg("token refreshed")
	return pair, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record signin failure")
	}
}

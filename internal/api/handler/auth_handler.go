package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/api/metrics"
	"github.com/starcode/library-api/internal/api/middleware"
	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

// AuthHandler handles signin and token refresh.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signinRequest struct {
	Username string `json:"username" xml:"username" yaml:"username" validate:"required"`
	Password string `json:"password" xml:"password" yaml:"password" validate:"required"`
}

type tokenResponse struct {
	Username      string    `json:"username" xml:"username" yaml:"username"`
	Authenticated bool      `json:"authenticated" xml:"authenticated" yaml:"authenticated"`
	Created       time.Time `json:"created" xml:"created" yaml:"created"`
	Expiration    time.Time `json:"expiration" xml:"expiration" yaml:"expiration"`
	AccessToken   string    `json:"accessToken" xml:"accessToken" yaml:"accessToken"`
	RefreshToken  string    `json:"refreshToken" xml:"refreshToken" yaml:"refreshToken"`
}

// SignIn authenticates a user and returns an access/refresh token pair.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json,xml
// @Produce      json,xml
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.SigninAttemptsTotal.WithLabelValues(signinResult(err)).Inc()
		return err
	}

	metrics.SigninAttemptsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, toTokenResponse(pair))
}

// Refresh exchanges a refresh token for a brand-new pair.
//
// @Summary      Refresh tokens
// @Tags         auth
// @Produce      json,xml
// @Param        username       path    string  true  "Username the refresh token was issued to"
// @Param        Authorization  header  string  true  "Bearer refresh token"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/refresh/{username} [put]
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	pair, err := h.authService.Refresh(c.Request().Context(), c.Param("username"), refreshToken)
	if err != nil {
		return err
	}

	metrics.TokensRefreshedTotal.Inc()
	return respond(c, http.StatusOK, toTokenResponse(pair))
}

func toTokenResponse(pair *ports.TokenPair) tokenResponse {
	return tokenResponse{
		Username:      pair.Username,
		Authenticated: pair.Authenticated,
		Created:       pair.Created,
		Expiration:    pair.Expiration,
		AccessToken:   pair.AccessToken,
		RefreshToken:  pair.RefreshToken,
	}
}

func signinResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}

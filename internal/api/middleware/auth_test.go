package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/service"
)

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour, 3*time.Hour)
	pair, err := tokens.CreateTokenPair("alice", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("CreateTokenPair: %v", err)
	}

	c, rec := newTestContext(t, "Bearer "+pair.AccessToken)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		roles, _ := c.Get("roles").([]string)
		if len(roles) != 1 || roles[0] != domain.RoleAdmin {
			t.Fatalf("roles not set: %v", roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour, 3*time.Hour)
	c, _ := newTestContext(t, "")

	err := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour, 3*time.Hour)
	other := service.NewTokenService("other", time.Hour, 3*time.Hour)
	pair, _ := other.CreateTokenPair("mallory", nil)

	c, _ := newTestContext(t, "Bearer "+pair.AccessToken)

	err := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour, 3*time.Hour)
	pair, _ := tokens.CreateTokenPair("alice", nil)

	// refresh tokens must not authorize resource calls
	c, _ := newTestContext(t, "Bearer "+pair.RefreshToken)

	err := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

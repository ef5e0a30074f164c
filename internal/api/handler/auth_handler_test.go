package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

type stubAuthService struct {
	signInFn  func(ctx context.Context, username, password string) (*ports.TokenPair, error)
	refreshFn func(ctx context.Context, username, refreshToken string) (*ports.TokenPair, error)
}

func (s *stubAuthService) SignIn(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	return s.signInFn(ctx, username, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, username, refreshToken string) (*ports.TokenPair, error) {
	return s.refreshFn(ctx, username, refreshToken)
}

func newAuthTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.Binder = NewBinder()
	return e
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	e := newAuthTestEcho()
	now := time.Now()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, username, password string) (*ports.TokenPair, error) {
			if username != "leandro" || password != "admin123" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return &ports.TokenPair{
				Username:      username,
				Authenticated: true,
				Created:       now,
				Expiration:    now.Add(time.Hour),
				AccessToken:   "access",
				RefreshToken:  "refresh",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"leandro","password":"admin123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "leandro" || resp["authenticated"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["accessToken"] != "access" || resp["refreshToken"] != "refresh" {
		t.Fatalf("tokens missing from payload: %+v", resp)
	}
}

func TestAuthHandler_SignIn_MissingFields(t *testing.T) {
	e := newAuthTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"username":"leandro"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SignIn(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, username, password string) (*ports.TokenPair, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"leandro","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignIn(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	e := newAuthTestEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, username, refreshToken string) (*ports.TokenPair, error) {
			if username != "leandro" || refreshToken != "refresh-token" {
				t.Fatalf("unexpected args: %s %s", username, refreshToken)
			}
			return &ports.TokenPair{Username: username, Authenticated: true, AccessToken: "new-access", RefreshToken: "new-refresh"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/auth/refresh/leandro", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer refresh-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("leandro")

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "new-access" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Refresh_MissingBearer(t *testing.T) {
	e := newAuthTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPut, "/auth/refresh/leandro", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("leandro")

	err := handler.Refresh(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

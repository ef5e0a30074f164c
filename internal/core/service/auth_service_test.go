package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/starcode/library-api/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) add(username, password string, roles []string, enabled bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	r.users[username] = &domain.User{
		ID:           username,
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
		Enabled:      enabled,
	}
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) Blocked(context.Context, string) (bool, error) { return t.blocked, nil }
func (t *stubThrottle) RecordFailure(context.Context, string) error   { t.failures++; return nil }
func (t *stubThrottle) Reset(context.Context, string) error           { t.resets++; return nil }

func newAuthService(repo *stubAuthRepo, throttle *stubThrottle) *AuthService {
	tokens := NewTokenService("secret", time.Hour, 3*time.Hour)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop())
}

func TestAuthService_SignIn_Success(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("alice", "s3cret", []string{domain.RoleAdmin}, true)
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	pair, err := svc.SignIn(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", pair)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset, got %d", throttle.resets)
	}
}

func TestAuthService_SignIn_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("bob", "goodpass", []string{domain.RoleCommon}, true)
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	_, errWrongPass := svc.SignIn(context.Background(), "bob", "badpass")
	_, errNoUser := svc.SignIn(context.Background(), "ghost", "whatever")

	if errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if errNoUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if throttle.failures != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", throttle.failures)
	}
}

func TestAuthService_SignIn_DisabledUser(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("carol", "pass", []string{domain.RoleCommon}, false)
	svc := newAuthService(repo, &stubThrottle{})

	if _, err := svc.SignIn(context.Background(), "carol", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_Throttled(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("dave", "pass", []string{domain.RoleCommon}, true)
	svc := newAuthService(repo, &stubThrottle{blocked: true})

	if _, err := svc.SignIn(context.Background(), "dave", "pass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("erin", "pass", []string{domain.RoleCommon}, true)
	svc := newAuthService(repo, &stubThrottle{})

	pair, err := svc.SignIn(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), "erin", pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if fresh.Username != "erin" || fresh.AccessToken == "" {
		t.Fatalf("unexpected pair: %+v", fresh)
	}
}

func TestAuthService_Refresh_SubjectMismatch(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("frank", "pass", []string{domain.RoleCommon}, true)
	repo.add("grace", "pass", []string{domain.RoleCommon}, true)
	svc := newAuthService(repo, &stubThrottle{})

	pair, _ := svc.SignIn(context.Background(), "frank", "pass")

	// grace exists, but the token was minted for frank.
	if _, err := svc.Refresh(context.Background(), "grace", pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken on subject mismatch, got %v", err)
	}
}

func TestAuthService_Refresh_UnknownUser(t *testing.T) {
	repo := newStubAuthRepo()
	repo.add("henry", "pass", []string{domain.RoleCommon}, true)
	svc := newAuthService(repo, &stubThrottle{})

	pair, _ := svc.SignIn(context.Background(), "henry", "pass")

	if _, err := svc.Refresh(context.Background(), "nobody", pair.RefreshToken); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

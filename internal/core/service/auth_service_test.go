package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marwa1454/formulaire/internal/core/domain"
)

type stubAuthRepo struct {
	users    map[string]*domain.User
	failWith error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *u
	r.users[u.Username] = &clone
	return u, nil
}

func seedUser(t *testing.T, repo *stubAuthRepo, username, password, role string, active bool) {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	repo.users[username] = &domain.User{
		Username:       username,
		HashedPassword: hash,
		Role:           role,
		IsActive:       active,
	}
}

const testSecret = "test-secret-do-not-use"

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubAuthRepo()
	seedUser(t, repo, "agent1", "s3cret", domain.RoleUser, true)
	svc := NewAuthService(repo, testSecret, time.Minute)

	user, err := svc.Authenticate(context.Background(), "agent1", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "agent1" || user.Role != domain.RoleUser {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_UniformRejection(t *testing.T) {
	repo := newStubAuthRepo()
	seedUser(t, repo, "agent1", "s3cret", domain.RoleUser, true)
	seedUser(t, repo, "dormant", "s3cret", domain.RoleUser, false)
	svc := NewAuthService(repo, testSecret, time.Minute)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "agent1", "nope"},
		{"unknown user", "ghost", "s3cret"},
		{"inactive account", "dormant", "s3cret"},
		{"empty username", "", "s3cret"},
		{"empty password", "agent1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Authenticate_RepoErrorPropagates(t *testing.T) {
	repo := newStubAuthRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewAuthService(repo, testSecret, time.Minute)

	_, err := svc.Authenticate(context.Background(), "agent1", "s3cret")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("infrastructure error must not masquerade as bad credentials")
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Minute)

	token, err := svc.IssueToken("admin", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Username != "admin" || claims.Role != domain.RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	token, err := svc.IssueToken("agent1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	repo := newStubAuthRepo()
	issuer := NewAuthService(repo, "other-secret", time.Minute)
	verifier := NewAuthService(repo, testSecret, time.Minute)

	token, err := issuer.IssueToken("agent1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, testSecret, time.Minute)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestAuthService_Login_ReturnsTokenAndUser(t *testing.T) {
	repo := newStubAuthRepo()
	seedUser(t, repo, "admin", "admin123", domain.RoleAdmin, true)
	svc := NewAuthService(repo, testSecret, time.Minute)

	token, user, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Errorf("expected non-empty token")
	}
	if user.Username != "admin" {
		t.Errorf("unexpected user: %+v", user)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("role not embedded: %+v", claims)
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("password stored in clear")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Errorf("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Errorf("wrong password accepted")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Errorf("expected distinct hashes for the same password")
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

const testSecret = "test-secret"

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = "user_" + user.Username
	r.users[user.Username] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func (r *stubRevoker) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if r.revoked == nil {
		r.revoked = make(map[string]time.Duration)
	}
	r.revoked[token] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := r.revoked[token]
	return ok, nil
}

func authServiceUnderTest() (*AuthService, *stubUserRepo, *stubRevoker) {
	repo := newStubUserRepo()
	revoker := &stubRevoker{}
	return NewAuthService(repo, revoker, testSecret, time.Hour), repo, revoker
}

func registerInput(role string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: "fatou",
		Password: "hunter2",
		Email:    "fatou@example.sn",
		Role:     role,
		SellerID: "seller_1",
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestRegister_Success(t *testing.T) {
	svc, repo, _ := authServiceUnderTest()

	user, err := svc.Register(context.Background(), registerInput(domain.RoleSeller))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleSeller || user.SellerID != "seller_1" {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Fatalf("password stored in clear or missing")
	}
	if _, ok := repo.users["fatou"]; !ok {
		t.Fatalf("user not persisted")
	}
}

func TestRegister_AcceptsAllKnownRoles(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleSeller, domain.RoleClient, domain.RoleCarrier} {
		svc, _, _ := authServiceUnderTest()
		if _, err := svc.Register(context.Background(), registerInput(role)); err != nil {
			t.Fatalf("role %s: %v", role, err)
		}
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := authServiceUnderTest()

	tests := []struct {
		name  string
		input ports.RegisterInput
	}{
		{"empty username", ports.RegisterInput{Password: "x", Role: domain.RoleClient}},
		{"empty password", ports.RegisterInput{Username: "x", Role: domain.RoleClient}},
		{"unknown role", registerInput("superuser")},
		{"empty role", registerInput("")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := authServiceUnderTest()

	if _, err := svc.Register(context.Background(), registerInput(domain.RoleSeller)); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), registerInput(domain.RoleSeller))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestLogin_ReturnsParseableToken(t *testing.T) {
	svc, _, _ := authServiceUnderTest()
	if _, err := svc.Register(context.Background(), registerInput(domain.RoleSeller)); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "fatou", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "fatou" {
		t.Fatalf("unexpected user %+v", user)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["username"] != "fatou" || claims["role"] != domain.RoleSeller {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims["seller_id"] != "seller_1" {
		t.Fatalf("seller_id claim missing: %+v", claims)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("token has no expiry")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := authServiceUnderTest()
	if _, err := svc.Register(context.Background(), registerInput(domain.RoleSeller)); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "fatou", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := authServiceUnderTest()

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc, _, _ := authServiceUnderTest()

	_, _, err := svc.Login(context.Background(), "", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func TestLogout_RevokesForRemainingLifetime(t *testing.T) {
	svc, _, revoker := authServiceUnderTest()
	if _, err := svc.Register(context.Background(), registerInput(domain.RoleSeller)); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "fatou", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	ttl, ok := revoker.revoked[token]
	if !ok {
		t.Fatalf("token not revoked")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected revocation ttl %s", ttl)
	}
}

func TestLogout_ExpiredTokenIsNoOp(t *testing.T) {
	svc, _, revoker := authServiceUnderTest()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "fatou",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if err := svc.Logout(context.Background(), signed); err != nil {
		t.Fatalf("logout expired: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("expired token should not be stored")
	}
}

func TestLogout_GarbageToken(t *testing.T) {
	svc, _, _ := authServiceUnderTest()

	err := svc.Logout(context.Background(), "not-a-token")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogout_WrongSignature(t *testing.T) {
	svc, _, _ := authServiceUnderTest()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "mallory",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if err := svc.Logout(context.Background(), signed); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

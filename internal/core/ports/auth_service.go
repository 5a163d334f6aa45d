package ports

import (
	"context"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// RegisterInput carries the fields for creating a new user account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
	ClientID string
	SellerID string
}

// AuthService defines registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the given bearer token for its remaining lifetime.
	Logout(ctx context.Context, token string) error
}

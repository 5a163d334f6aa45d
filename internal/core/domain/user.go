package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleSeller  = "seller"
	RoleClient  = "client"
	RoleCarrier = "carrier"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTokenRevoked = errors.New("token has been revoked")

// User models an authenticated actor in the system. Sellers carry a SellerID
// pointing at their seller record; clients a ClientID.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ClientID     string    `json:"client_id,omitempty"`
	SellerID     string    `json:"seller_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

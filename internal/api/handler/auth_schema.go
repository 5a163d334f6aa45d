package handler

import "github.com/terangamarket/marketplace-api/internal/core/domain"

type registerRequest struct {
	Username string `json:"username"  validate:"required,min=3"`
	Password string `json:"password"  validate:"required,min=8"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Role     string `json:"role"      validate:"required,oneof=admin seller client carrier"`
	ClientID string `json:"client_id" validate:"required_if=Role client"`
	SellerID string `json:"seller_id" validate:"required_if=Role seller"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

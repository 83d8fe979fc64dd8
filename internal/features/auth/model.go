package auth

import "github.com/xyz-asif/foundly/internal/features/users"

type SignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        *users.User `json:"user"`
}

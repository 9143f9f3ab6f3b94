package dto

import (
	"time"

	"github.com/ignatzorin/tecsolutions-backend/internal/service"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func ToTokenResponse(t *service.AccessToken) TokenResponse {
	return TokenResponse{
		AccessToken: t.Token,
		TokenType:   "Bearer",
		ExpiresAt:   t.ExpiresAt,
	}
}

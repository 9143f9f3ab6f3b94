package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/dto"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login обрабатывает POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToTokenResponse(token))
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/service"
)

// ContextOperatorKey: ключ gin.Context с именем оператора.
const ContextOperatorKey = "operator"

// AuthMiddleware проверяет JWT access токен.
// Если пароль оператора не задан, API открыт и middleware пропускает всё.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "требуется авторизация")
			return
		}

		username, err := auth.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "токен невалиден")
			return
		}

		c.Set(ContextOperatorKey, username)
		c.Next()
	}
}

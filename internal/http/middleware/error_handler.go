package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

// ErrorHandler отвечает на ошибки, добавленные через c.Error, если хэндлер сам ничего не записал.
// Ошибки без кода приложения маскируются как внутренние.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		entry := logger.Component("http").WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		if apperror.CodeOf(err) == apperror.ErrCodeInternal {
			entry.Error("ошибка запроса")
		} else {
			entry.Warn("ошибка запроса")
		}

		response.Error(c, err)
	}
}

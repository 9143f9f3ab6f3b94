package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
)

// RequestLogger пишет одну запись logrus на запрос.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logger.Component("http").WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})

		switch {
		case status >= 500:
			entry.Error("запрос")
		case status >= 400:
			entry.Warn("запрос")
		default:
			entry.Info("запрос")
		}
	}
}

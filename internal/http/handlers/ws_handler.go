package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/service"
	"github.com/ignatzorin/tecsolutions-backend/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub      *ws.Hub
	auth     *service.AuthService
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер; при auth nil или выключенной авторизации вход без токена.
func NewWSHandler(hub *ws.Hub, auth *service.AuthService, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub:  hub,
		auth: auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Handle обслуживает GET /api/ws?token=...
// Браузер не умеет передавать заголовок Authorization при upgrade, поэтому токен идёт в query.
func (h *WSHandler) Handle(c *gin.Context) {
	if h.auth != nil && h.auth.Enabled() {
		rawToken := c.Query("token")
		if rawToken == "" {
			response.Unauthorized(c, "access токен обязателен")
			return
		}
		if _, err := h.auth.Authenticate(rawToken); err != nil {
			response.Unauthorized(c, "невалидный access токен")
			return
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту.
		logger.Component("ws").WithError(err).Warn("не удалось установить соединение")
		return
	}

	ws.NewClient(conn, h.hub).Run()
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
)

// EventPublisher рассылает события об изменении коллекций (ws.Hub).
type EventPublisher interface {
	Publish(event string, data any) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, any) error { return nil }

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// publish не прерывает запрос: изменение уже сохранено.
func publish(events EventPublisher, event string, data any) {
	if err := events.Publish(event, data); err != nil {
		logger.Component("http").WithError(err).WithField("event", event).Warn("не удалось отправить событие")
	}
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "некорректное тело запроса: "+err.Error())
		return false
	}
	return true
}

// deletedPayload: тело событий *.deleted.
type deletedPayload struct {
	ID string `json:"id"`
}

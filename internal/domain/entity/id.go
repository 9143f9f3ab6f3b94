package entity

import "github.com/google/uuid"

// NewID выдаёт идентификатор, упорядоченный по времени создания (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

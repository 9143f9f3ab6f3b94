package repository

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
)

// ClientRepository: коллекция клиентов в порядке вставки.
type ClientRepository interface {
	List(ctx context.Context) ([]*entity.Client, error)
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	// Save обновляет запись на месте или добавляет её в конец.
	Save(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]*entity.Service, error)
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	Save(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}

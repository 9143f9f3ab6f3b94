package persistence

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

type ServiceRepositoryAdapter struct {
	collection *Collection[serviceRecord]
}

func NewServiceRepositoryAdapter(store storage.Store) *ServiceRepositoryAdapter {
	return &ServiceRepositoryAdapter{collection: NewCollection[serviceRecord](store, storage.ServicesKey)}
}

func (r *ServiceRepositoryAdapter) List(ctx context.Context) ([]*entity.Service, error) {
	records, err := r.collection.All(ctx)
	if err != nil {
		return nil, err
	}
	services := make([]*entity.Service, 0, len(records))
	for _, rec := range records {
		services = append(services, rec.toEntity())
	}
	return services, nil
}

func (r *ServiceRepositoryAdapter) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	rec, ok, err := r.collection.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrServiceNotFound
	}
	return rec.toEntity(), nil
}

func (r *ServiceRepositoryAdapter) Save(ctx context.Context, service *entity.Service) error {
	return r.collection.Upsert(ctx, newServiceRecord(service))
}

func (r *ServiceRepositoryAdapter) Delete(ctx context.Context, id string) error {
	return r.collection.Delete(ctx, id)
}

func (r *ServiceRepositoryAdapter) ReplaceAll(ctx context.Context, services []*entity.Service) error {
	records := make([]serviceRecord, 0, len(services))
	for _, s := range services {
		records = append(records, newServiceRecord(s))
	}
	return r.collection.ReplaceAll(ctx, records)
}

package persistence

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

type ClientRepositoryAdapter struct {
	collection *Collection[clientRecord]
}

func NewClientRepositoryAdapter(store storage.Store) *ClientRepositoryAdapter {
	return &ClientRepositoryAdapter{collection: NewCollection[clientRecord](store, storage.ClientsKey)}
}

func (r *ClientRepositoryAdapter) List(ctx context.Context) ([]*entity.Client, error) {
	records, err := r.collection.All(ctx)
	if err != nil {
		return nil, err
	}
	clients := make([]*entity.Client, 0, len(records))
	for _, rec := range records {
		clients = append(clients, rec.toEntity())
	}
	return clients, nil
}

func (r *ClientRepositoryAdapter) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	rec, ok, err := r.collection.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrClientNotFound
	}
	return rec.toEntity(), nil
}

func (r *ClientRepositoryAdapter) Save(ctx context.Context, client *entity.Client) error {
	return r.collection.Upsert(ctx, newClientRecord(client))
}

func (r *ClientRepositoryAdapter) Delete(ctx context.Context, id string) error {
	return r.collection.Delete(ctx, id)
}

// ReplaceAll используется при первичном заполнении демо-данными.
func (r *ClientRepositoryAdapter) ReplaceAll(ctx context.Context, clients []*entity.Client) error {
	records := make([]clientRecord, 0, len(clients))
	for _, c := range clients {
		records = append(records, newClientRecord(c))
	}
	return r.collection.ReplaceAll(ctx, records)
}

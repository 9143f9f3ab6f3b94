package storage

import "context"

// Ключи коллекций в хранилище.
const (
	ClientsKey   = "tecsolutions_clients"
	ServicesKey  = "tecsolutions_services"
	ProposalsKey = "tecsolutions_proposals"
)

// Store: строковое key-value хранилище, в котором живут JSON-документы коллекций.
type Store interface {
	// Get возвращает значение и признак его наличия.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

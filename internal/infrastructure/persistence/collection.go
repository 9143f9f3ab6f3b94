package persistence

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

// Record: запись коллекции с идентификатором.
type Record interface {
	RecordID() string
}

// Collection хранит все записи одним JSON-массивом под одним ключом.
// Каждое изменение перечитывает и перезаписывает массив целиком.
type Collection[R Record] struct {
	store storage.Store
	key   string
	mu    sync.Mutex
	log   *logrus.Entry
}

func NewCollection[R Record](store storage.Store, key string) *Collection[R] {
	return &Collection[R]{
		store: store,
		key:   key,
		log:   logger.Component("persistence").WithField("key", key),
	}
}

// All возвращает записи в порядке вставки.
func (c *Collection[R]) All(ctx context.Context) ([]R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Collection[R]) Find(ctx context.Context, id string) (R, bool, error) {
	var zero R
	records, err := c.All(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Upsert заменяет запись с тем же ID на её месте или добавляет в конец.
func (c *Collection[R]) Upsert(ctx context.Context, record R) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].RecordID() == record.RecordID() {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return c.write(ctx, records)
}

// Delete убирает все записи с этим ID. Отсутствие записи ошибкой не считается.
func (c *Collection[R]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	return c.write(ctx, kept)
}

// ReplaceAll перезаписывает коллекцию целиком.
func (c *Collection[R]) ReplaceAll(ctx context.Context, records []R) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(ctx, records)
}

func (c *Collection[R]) load(ctx context.Context) ([]R, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStorageError, "не удалось прочитать хранилище")
	}
	if !ok || raw == "" {
		return []R{}, nil
	}

	var records []R
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		c.log.WithError(err).Warn("повреждённые данные коллекции, считаем её пустой")
		return []R{}, nil
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

func (c *Collection[R]) write(ctx context.Context, records []R) error {
	if records == nil {
		records = []R{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сериализовать коллекцию")
	}
	if err := c.store.Set(ctx, c.key, string(data)); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStorageError, "не удалось записать хранилище")
	}
	return nil
}

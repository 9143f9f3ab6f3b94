package db

import (
	"context"
	"fmt"
	"io"

	"github.com/ignatzorin/tecsolutions-backend/internal/config"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// OpenStore выбирает хранилище коллекций по STORE_DRIVER.
// Возвращённый Closer освобождает соединение.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return storage.NewMemoryStore(), nopCloser{}, nil

	case config.StoreSQLite:
		conn, err := NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewSQLiteStore(conn)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return store, sqlDB, nil

	case config.StorePostgres:
		conn, err := NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := RunMigrations(ctx, conn, cfg.MigrationsPath); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return storage.NewPostgresStore(conn), conn, nil

	case config.StoreRedis:
		client, err := NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client), closerFunc(client.Close), nil
	}

	return nil, nil, fmt.Errorf("db: неизвестный драйвер хранилища %q", cfg.StoreDriver)
}

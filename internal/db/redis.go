package db

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// NewRedis подключается к Redis и проверяет соединение.
func NewRedis(ctx context.Context, addr, password string, database int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: не удалось подключиться к %s: %w", addr, err)
	}
	return client, nil
}

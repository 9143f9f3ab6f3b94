package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLite открывает файл SQLite, создавая каталог при необходимости.
func NewSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: не удалось создать каталог %s: %w", dir, err)
		}
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: не удалось открыть %s: %w", path, err)
	}

	// Один писатель: SQLite не любит параллельные транзакции записи.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return conn, nil
}

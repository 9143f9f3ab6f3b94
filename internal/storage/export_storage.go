package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportStorage архивирует выгруженные документы (PDF, отчёты) на диск.
type ExportStorage struct {
	rootPath     string
	maxFileBytes int64
	now          func() time.Time
}

// NewExportStorage создаёт корневой каталог архива.
func NewExportStorage(rootPath string, maxFileMB int64) (*ExportStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &ExportStorage{
		rootPath:     rootPath,
		maxFileBytes: maxFileMB * 1024 * 1024,
		now:          time.Now,
	}, nil
}

// Save записывает документ в подкаталог текущего дня и возвращает относительный путь.
// Повторная выгрузка с тем же именем перезаписывает файл.
func (s *ExportStorage) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if int64(len(data)) > s.maxFileBytes {
		return "", fmt.Errorf("storage: размер файла превышает лимит %d байт", s.maxFileBytes)
	}

	day := s.now().Format("2006-01-02")
	dayDir := filepath.Join(s.rootPath, day)
	if err := os.MkdirAll(dayDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: не удалось создать каталог дня: %w", err)
	}

	safeName := sanitizeFilename(fileName)
	targetPath := filepath.Join(dayDir, safeName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return filepath.Join(day, safeName), nil
}

var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", " ", "_")

// sanitizeFilename удаляет потенциально опасные символы.
// Разделители заменяются до filepath.Base, чтобы не терять начало имени.
func sanitizeFilename(name string) string {
	name = filenameReplacer.Replace(name)
	name = strings.ReplaceAll(name, "..", "")
	name = filepath.Base(name)
	if name == "" || name == "." {
		name = "export"
	}
	return name
}

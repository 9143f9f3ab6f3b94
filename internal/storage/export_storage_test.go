package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

func TestExportStorage_Save(t *testing.T) {
	root := t.TempDir()
	s, err := storage.NewExportStorage(root, 1)
	require.NoError(t, err)

	rel, err := s.Save(context.Background(), "Proposta_PROP-20240315-007_ABC Ltda.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, "Proposta_PROP-20240315-007_ABC_Ltda.pdf", filepath.Base(rel))

	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
}

func TestExportStorage_SlashInCompanyKeepsNumber(t *testing.T) {
	root := t.TempDir()
	s, err := storage.NewExportStorage(root, 1)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.Save(ctx, "Proposta_PROP-20240101-001_Acme/Brasil Ltda.pdf", []byte("one"))
	require.NoError(t, err)
	second, err := s.Save(ctx, "Proposta_PROP-20240101-002_Acme/Brasil Ltda.pdf", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "Proposta_PROP-20240101-001_Acme_Brasil_Ltda.pdf", filepath.Base(first))
	assert.Equal(t, "Proposta_PROP-20240101-002_Acme_Brasil_Ltda.pdf", filepath.Base(second))

	data, err := os.ReadFile(filepath.Join(root, first))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestExportStorage_SizeLimit(t *testing.T) {
	s, err := storage.NewExportStorage(t.TempDir(), 1)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "big.json", []byte(strings.Repeat("x", 1024*1024+1)))

	assert.Error(t, err)
}

func TestExportStorage_PathTraversalStaysInRoot(t *testing.T) {
	root := t.TempDir()
	s, err := storage.NewExportStorage(root, 1)
	require.NoError(t, err)

	rel, err := s.Save(context.Background(), "../../etc/passwd", []byte("x"))
	require.NoError(t, err)

	assert.False(t, strings.Contains(rel, ".."))
}

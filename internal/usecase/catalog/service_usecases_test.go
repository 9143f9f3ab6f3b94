package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/infrastructure/persistence"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/catalog"
)

func seedCatalog(t *testing.T) (*persistence.ServiceRepositoryAdapter, []*entity.Service) {
	t.Helper()
	repo := persistence.NewServiceRepositoryAdapter(storage.NewMemoryStore())
	clk := clock.NewFake(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	create := catalog.NewCreateServiceUseCase(repo, clk)

	fields := []entity.ServiceFields{
		{Name: "Configuração de Servidor", Description: "Windows/Linux", Price: decimal.NewFromInt(800), Category: valueobject.ServiceCategoryInfrastructure, Unit: "unidade"},
		{Name: "Backup em Nuvem", Description: "Backup automatizado", Price: decimal.NewFromInt(200), Category: valueobject.ServiceCategoryBackup, Unit: "TB/mês"},
		{Name: "Migração para AWS", Description: "Migração completa para nuvem", Price: decimal.NewFromInt(2500), Category: valueobject.ServiceCategoryCloud, Unit: "projeto"},
	}
	services := make([]*entity.Service, 0, len(fields))
	for _, f := range fields {
		s, err := create.Execute(context.Background(), f)
		require.NoError(t, err)
		services = append(services, s)
	}
	return repo, services
}

func TestListServices_Filters(t *testing.T) {
	repo, _ := seedCatalog(t)
	list := catalog.NewListServicesUseCase(repo)

	all, err := list.Execute(context.Background(), catalog.ListServicesInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := list.Execute(context.Background(), catalog.ListServicesInput{Category: valueobject.ServiceCategoryCloud})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Migração para AWS", byCategory[0].Name)

	bySearch, err := list.Execute(context.Background(), catalog.ListServicesInput{Search: "nuvem"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)

	both, err := list.Execute(context.Background(), catalog.ListServicesInput{Search: "nuvem", Category: valueobject.ServiceCategoryBackup})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Backup em Nuvem", both[0].Name)
}

func TestUpdateAndDeleteService(t *testing.T) {
	ctx := context.Background()
	repo, services := seedCatalog(t)
	target := services[1]

	updated, err := catalog.NewUpdateServiceUseCase(repo).Execute(ctx, catalog.UpdateServiceInput{
		ID:     target.ID,
		Fields: entity.ServiceFields{Name: "Backup", Price: decimal.RequireFromString("250.50"), Category: valueobject.ServiceCategoryBackup},
	})
	require.NoError(t, err)
	assert.Equal(t, target.CreatedAt, updated.CreatedAt)

	got, err := catalog.NewGetServiceUseCase(repo).Execute(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "250.5", got.Price.String())

	require.NoError(t, catalog.NewDeleteServiceUseCase(repo).Execute(ctx, target.ID))
	err = catalog.NewDeleteServiceUseCase(repo).Execute(ctx, target.ID)
	assert.ErrorIs(t, err, apperror.ErrServiceNotFound)
}

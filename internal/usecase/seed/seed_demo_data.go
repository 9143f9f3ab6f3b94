package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
)

// ClientStore: репозиторий клиентов с массовой записью.
type ClientStore interface {
	repository.ClientRepository
	ReplaceAll(ctx context.Context, clients []*entity.Client) error
}

type ServiceStore interface {
	repository.ServiceRepository
	ReplaceAll(ctx context.Context, services []*entity.Service) error
}

// SeedResult: сколько записей добавлено.
type SeedResult struct {
	Clients  int
	Services int
}

// SeedDemoDataUseCase заполняет пустые коллекции демонстрационными данными.
// Коллекции проверяются независимо: непустая коллекция не трогается.
type SeedDemoDataUseCase struct {
	clients  ClientStore
	services ServiceStore
}

func NewSeedDemoDataUseCase(clients ClientStore, services ServiceStore) *SeedDemoDataUseCase {
	return &SeedDemoDataUseCase{clients: clients, services: services}
}

func (uc *SeedDemoDataUseCase) Execute(ctx context.Context) (SeedResult, error) {
	var result SeedResult
	log := logger.Component("seed")

	existingClients, err := uc.clients.List(ctx)
	if err != nil {
		return result, fmt.Errorf("seed: не удалось прочитать клиентов: %w", err)
	}
	if len(existingClients) == 0 {
		demo := demoClients()
		if err := uc.clients.ReplaceAll(ctx, demo); err != nil {
			return result, fmt.Errorf("seed: не удалось записать клиентов: %w", err)
		}
		result.Clients = len(demo)
	}

	existingServices, err := uc.services.List(ctx)
	if err != nil {
		return result, fmt.Errorf("seed: не удалось прочитать услуги: %w", err)
	}
	if len(existingServices) == 0 {
		demo := demoServices()
		if err := uc.services.ReplaceAll(ctx, demo); err != nil {
			return result, fmt.Errorf("seed: не удалось записать услуги: %w", err)
		}
		result.Services = len(demo)
	}

	log.WithField("clients", result.Clients).WithField("services", result.Services).Info("демо-данные загружены")
	return result, nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func strPtr(s string) *string {
	return &s
}

func demoClients() []*entity.Client {
	return []*entity.Client{
		{
			ID:        entity.NewID(),
			Name:      "João Silva",
			Email:     "joao@empresa.com",
			Phone:     "(11) 99999-9999",
			Company:   "Empresa ABC Ltda",
			TaxID:     strPtr("12.345.678/0001-90"),
			Address:   "Rua das Flores, 123 - São Paulo, SP",
			CreatedAt: date("2024-01-15"),
		},
		{
			ID:        entity.NewID(),
			Name:      "Maria Santos",
			Email:     "maria@comercio.com",
			Phone:     "(11) 88888-8888",
			Company:   "Comércio XYZ",
			TaxID:     strPtr("98.765.432/0001-10"),
			Address:   "Av. Paulista, 456 - São Paulo, SP",
			CreatedAt: date("2024-01-20"),
		},
	}
}

func demoServices() []*entity.Service {
	created := date("2024-01-10")
	service := func(name, description string, price int64, category valueobject.ServiceCategory, unit string) *entity.Service {
		return &entity.Service{
			ID:          entity.NewID(),
			Name:        name,
			Description: description,
			Price:       decimal.NewFromInt(price),
			Category:    category,
			Unit:        unit,
			CreatedAt:   created,
		}
	}

	return []*entity.Service{
		service("Configuração de Servidor", "Instalação e configuração completa de servidor Windows/Linux", 800, valueobject.ServiceCategoryInfrastructure, "unidade"),
		service("Suporte Técnico Premium", "Suporte técnico 24/7 com atendimento prioritário", 150, valueobject.ServiceCategoryHelpdesk, "mês"),
		service("Backup em Nuvem", "Solução de backup automatizado em nuvem com criptografia", 200, valueobject.ServiceCategoryBackup, "TB/mês"),
		service("Migração para AWS", "Migração completa de infraestrutura para Amazon Web Services", 2500, valueobject.ServiceCategoryCloud, "projeto"),
		service("Cabeamento Estruturado", "Instalação de rede estruturada com certificação", 80, valueobject.ServiceCategoryCabling, "ponto"),
	}
}

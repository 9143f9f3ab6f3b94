package catalog

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

type ListServicesInput struct {
	Search string
	// Пустая Category означает все категории.
	Category valueobject.ServiceCategory
}

type ListServicesUseCase struct {
	serviceRepo repository.ServiceRepository
}

func NewListServicesUseCase(serviceRepo repository.ServiceRepository) *ListServicesUseCase {
	return &ListServicesUseCase{serviceRepo: serviceRepo}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, input ListServicesInput) ([]*entity.Service, error) {
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Service, 0, len(services))
	for _, s := range services {
		if input.Category != "" && s.Category != input.Category {
			continue
		}
		if s.Matches(input.Search) {
			result = append(result, s)
		}
	}
	return result, nil
}

type GetServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

func NewGetServiceUseCase(serviceRepo repository.ServiceRepository) *GetServiceUseCase {
	return &GetServiceUseCase{serviceRepo: serviceRepo}
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, id string) (*entity.Service, error) {
	return uc.serviceRepo.FindByID(ctx, id)
}

type CreateServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	clock       clock.Clock
}

func NewCreateServiceUseCase(serviceRepo repository.ServiceRepository, clk clock.Clock) *CreateServiceUseCase {
	return &CreateServiceUseCase{serviceRepo: serviceRepo, clock: clk}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, input entity.ServiceFields) (*entity.Service, error) {
	s := entity.NewService(input, uc.clock.Now())
	if err := uc.serviceRepo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

type UpdateServiceInput struct {
	ID     string
	Fields entity.ServiceFields
}

// UpdateServiceUseCase меняет позицию каталога. Цены в уже созданных предложениях не трогаются.
type UpdateServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

func NewUpdateServiceUseCase(serviceRepo repository.ServiceRepository) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{serviceRepo: serviceRepo}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, input UpdateServiceInput) (*entity.Service, error) {
	s, err := uc.serviceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	s.Apply(input.Fields)
	if err := uc.serviceRepo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

type DeleteServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

func NewDeleteServiceUseCase(serviceRepo repository.ServiceRepository) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{serviceRepo: serviceRepo}
}

func (uc *DeleteServiceUseCase) Execute(ctx context.Context, id string) error {
	if _, err := uc.serviceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.serviceRepo.Delete(ctx, id)
}

package client

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

type ListClientsInput struct {
	Search string
}

type ListClientsUseCase struct {
	clientRepo repository.ClientRepository
}

func NewListClientsUseCase(clientRepo repository.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo}
}

// Execute возвращает клиентов в порядке добавления, отфильтрованных по строке поиска.
func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) ([]*entity.Client, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Client, 0, len(clients))
	for _, c := range clients {
		if c.Matches(input.Search) {
			result = append(result, c)
		}
	}
	return result, nil
}

type GetClientUseCase struct {
	clientRepo repository.ClientRepository
}

func NewGetClientUseCase(clientRepo repository.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, id string) (*entity.Client, error) {
	return uc.clientRepo.FindByID(ctx, id)
}

type CreateClientUseCase struct {
	clientRepo repository.ClientRepository
	clock      clock.Clock
}

func NewCreateClientUseCase(clientRepo repository.ClientRepository, clk clock.Clock) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo, clock: clk}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input entity.ClientFields) (*entity.Client, error) {
	c := entity.NewClient(input, uc.clock.Now())
	if err := uc.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateClientInput struct {
	ID     string
	Fields entity.ClientFields
}

type UpdateClientUseCase struct {
	clientRepo repository.ClientRepository
}

func NewUpdateClientUseCase(clientRepo repository.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{clientRepo: clientRepo}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*entity.Client, error) {
	c, err := uc.clientRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	c.Apply(input.Fields)
	if err := uc.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteClientUseCase удаляет клиента. Предложения клиента остаются: ссылки слабые.
type DeleteClientUseCase struct {
	clientRepo repository.ClientRepository
}

func NewDeleteClientUseCase(clientRepo repository.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, id string) error {
	if _, err := uc.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.clientRepo.Delete(ctx, id)
}

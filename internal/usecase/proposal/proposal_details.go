package proposal

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
)

type GetProposalDetailsUseCase struct {
	proposalRepo repository.ProposalRepository
	clientRepo   repository.ClientRepository
	serviceRepo  repository.ServiceRepository
}

func NewGetProposalDetailsUseCase(
	proposalRepo repository.ProposalRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
) *GetProposalDetailsUseCase {
	return &GetProposalDetailsUseCase{
		proposalRepo: proposalRepo,
		clientRepo:   clientRepo,
		serviceRepo:  serviceRepo,
	}
}

// Execute собирает предложение с клиентом и каталогом. Без клиента документ не строится.
func (uc *GetProposalDetailsUseCase) Execute(ctx context.Context, proposalID string) (*entity.ProposalWithDetails, error) {
	p, err := uc.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return withDetails(ctx, p, uc.clientRepo, uc.serviceRepo)
}

func withDetails(
	ctx context.Context,
	p *entity.Proposal,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
) (*entity.ProposalWithDetails, error) {
	client, err := clientRepo.FindByID(ctx, p.ClientID)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(ctx, serviceRepo)
	if err != nil {
		return nil, err
	}
	return &entity.ProposalWithDetails{
		Proposal: *p,
		Client:   *client,
		Services: catalog,
	}, nil
}

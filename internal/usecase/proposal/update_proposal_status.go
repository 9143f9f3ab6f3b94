package proposal

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

type UpdateProposalStatusInput struct {
	ID     string
	Status valueobject.ProposalStatus
}

// UpdateProposalStatusUseCase меняет статус. Переходы не упорядочены: допустим любой из четырёх.
type UpdateProposalStatusUseCase struct {
	proposalRepo repository.ProposalRepository
	clock        clock.Clock
}

func NewUpdateProposalStatusUseCase(proposalRepo repository.ProposalRepository, clk clock.Clock) *UpdateProposalStatusUseCase {
	return &UpdateProposalStatusUseCase{proposalRepo: proposalRepo, clock: clk}
}

func (uc *UpdateProposalStatusUseCase) Execute(ctx context.Context, input UpdateProposalStatusInput) (*entity.Proposal, error) {
	p, err := uc.proposalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := p.ChangeStatus(input.Status, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.proposalRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

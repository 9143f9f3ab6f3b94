package proposal

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

type UpdateProposalInput struct {
	ID string
	ProposalInput
}

type UpdateProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	serviceRepo  repository.ServiceRepository
	clock        clock.Clock
}

func NewUpdateProposalUseCase(proposalRepo repository.ProposalRepository, serviceRepo repository.ServiceRepository, clk clock.Clock) *UpdateProposalUseCase {
	return &UpdateProposalUseCase{proposalRepo: proposalRepo, serviceRepo: serviceRepo, clock: clk}
}

// Execute переписывает содержимое предложения; ID, номер и дата создания сохраняются.
func (uc *UpdateProposalUseCase) Execute(ctx context.Context, input UpdateProposalInput) (*entity.Proposal, error) {
	p, err := uc.proposalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, uc.serviceRepo)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := fillDraft(p, input.ProposalInput, catalog, now); err != nil {
		return nil, err
	}
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, apperror.New(apperror.ErrCodeValidation, "некорректный статус предложения")
		}
		p.Status = input.Status
	}
	p.UpdatedAt = now

	if err := uc.proposalRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

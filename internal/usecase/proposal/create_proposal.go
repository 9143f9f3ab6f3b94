package proposal

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/numbering"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

type CreateProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	serviceRepo  repository.ServiceRepository
	numbers      *numbering.Generator
	clock        clock.Clock
}

func NewCreateProposalUseCase(
	proposalRepo repository.ProposalRepository,
	serviceRepo repository.ServiceRepository,
	numbers *numbering.Generator,
	clk clock.Clock,
) *CreateProposalUseCase {
	return &CreateProposalUseCase{
		proposalRepo: proposalRepo,
		serviceRepo:  serviceRepo,
		numbers:      numbers,
		clock:        clk,
	}
}

// Execute сохраняет новое предложение как черновик или сразу как отправленное.
func (uc *CreateProposalUseCase) Execute(ctx context.Context, input ProposalInput) (*entity.Proposal, error) {
	status := input.Status
	if status == "" {
		status = valueobject.ProposalStatusDraft
	}
	if status != valueobject.ProposalStatusDraft && status != valueobject.ProposalStatusSent {
		return nil, apperror.New(apperror.ErrCodeValidation, "новое предложение сохраняется как черновик или отправленное")
	}

	catalog, err := loadCatalog(ctx, uc.serviceRepo)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	p := &entity.Proposal{
		ID:        entity.NewID(),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := fillDraft(p, input, catalog, now); err != nil {
		return nil, err
	}
	p.Number = uc.numbers.Next()

	if err := uc.proposalRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

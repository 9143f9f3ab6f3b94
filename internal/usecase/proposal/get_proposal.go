package proposal

import (
	"context"
	"sort"
	"strings"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
)

type GetProposalUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewGetProposalUseCase(proposalRepo repository.ProposalRepository) *GetProposalUseCase {
	return &GetProposalUseCase{proposalRepo: proposalRepo}
}

func (uc *GetProposalUseCase) Execute(ctx context.Context, proposalID string) (*entity.Proposal, error) {
	return uc.proposalRepo.FindByID(ctx, proposalID)
}

type ListProposalsUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewListProposalsUseCase(proposalRepo repository.ProposalRepository) *ListProposalsUseCase {
	return &ListProposalsUseCase{proposalRepo: proposalRepo}
}

// Execute возвращает предложения от новых к старым.
func (uc *ListProposalsUseCase) Execute(ctx context.Context, filter repository.ProposalFilter) ([]*entity.Proposal, error) {
	proposals, err := uc.proposalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]*entity.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && p.ClientID != filter.ClientID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Number), search) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type DeleteProposalUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewDeleteProposalUseCase(proposalRepo repository.ProposalRepository) *DeleteProposalUseCase {
	return &DeleteProposalUseCase{proposalRepo: proposalRepo}
}

func (uc *DeleteProposalUseCase) Execute(ctx context.Context, proposalID string) error {
	if _, err := uc.proposalRepo.FindByID(ctx, proposalID); err != nil {
		return err
	}
	return uc.proposalRepo.Delete(ctx, proposalID)
}

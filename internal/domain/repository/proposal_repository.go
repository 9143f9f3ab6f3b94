package repository

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
)

type ProposalRepository interface {
	List(ctx context.Context) ([]*entity.Proposal, error)
	FindByID(ctx context.Context, id string) (*entity.Proposal, error)
	Save(ctx context.Context, proposal *entity.Proposal) error
	Delete(ctx context.Context, id string) error
}

// ProposalFilter: фильтр списка; пустые поля не ограничивают выборку.
type ProposalFilter struct {
	Status   valueobject.ProposalStatus
	ClientID string
	Search   string
}

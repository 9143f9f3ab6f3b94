package persistence

import (
	"context"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
)

type ProposalRepositoryAdapter struct {
	collection *Collection[proposalRecord]
}

func NewProposalRepositoryAdapter(store storage.Store) *ProposalRepositoryAdapter {
	return &ProposalRepositoryAdapter{collection: NewCollection[proposalRecord](store, storage.ProposalsKey)}
}

func (r *ProposalRepositoryAdapter) List(ctx context.Context) ([]*entity.Proposal, error) {
	records, err := r.collection.All(ctx)
	if err != nil {
		return nil, err
	}
	proposals := make([]*entity.Proposal, 0, len(records))
	for _, rec := range records {
		proposals = append(proposals, rec.toEntity())
	}
	return proposals, nil
}

func (r *ProposalRepositoryAdapter) FindByID(ctx context.Context, id string) (*entity.Proposal, error) {
	rec, ok, err := r.collection.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.ErrProposalNotFound
	}
	return rec.toEntity(), nil
}

func (r *ProposalRepositoryAdapter) Save(ctx context.Context, proposal *entity.Proposal) error {
	return r.collection.Upsert(ctx, newProposalRecord(proposal))
}

func (r *ProposalRepositoryAdapter) Delete(ctx context.Context, id string) error {
	return r.collection.Delete(ctx, id)
}

package proposal_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/numbering"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/infrastructure/persistence"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
	"github.com/ignatzorin/tecsolutions-backend/internal/storage"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/proposal"
)

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

type fixture struct {
	clock     *clock.FakeClock
	numbers   *numbering.Generator
	clients   *persistence.ClientRepositoryAdapter
	services  *persistence.ServiceRepositoryAdapter
	proposals *persistence.ProposalRepositoryAdapter
	client    *entity.Client
	server    *entity.Service
	support   *entity.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clk := clock.NewFake(time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local))
	f := &fixture{
		clock:     clk,
		numbers:   numbering.NewGenerator(clk, fixedSource(42)),
		clients:   persistence.NewClientRepositoryAdapter(store),
		services:  persistence.NewServiceRepositoryAdapter(store),
		proposals: persistence.NewProposalRepositoryAdapter(store),
	}

	f.client = entity.NewClient(entity.ClientFields{Name: "João Silva", Company: "Empresa ABC Ltda"}, clk.Now())
	f.server = entity.NewService(entity.ServiceFields{Name: "Configuração de Servidor", Price: decimal.NewFromInt(800), Category: valueobject.ServiceCategoryInfrastructure}, clk.Now())
	f.support = entity.NewService(entity.ServiceFields{Name: "Suporte Técnico Premium", Price: decimal.NewFromInt(150), Category: valueobject.ServiceCategoryHelpdesk}, clk.Now())
	require.NoError(t, f.clients.Save(ctx, f.client))
	require.NoError(t, f.services.Save(ctx, f.server))
	require.NoError(t, f.services.Save(ctx, f.support))
	return f
}

func (f *fixture) create() *proposal.CreateProposalUseCase {
	return proposal.NewCreateProposalUseCase(f.proposals, f.services, f.numbers, f.clock)
}

func (f *fixture) input() proposal.ProposalInput {
	manual := decimal.NewFromInt(120)
	return proposal.ProposalInput{
		ClientID: f.client.ID,
		Title:    "Modernização",
		Items: []proposal.ItemInput{
			{ServiceID: f.server.ID, Quantity: 2},
			{ServiceID: f.support.ID, Quantity: 3, UnitPrice: &manual},
		},
		Discount: decimal.NewFromInt(60),
	}
}

func TestCreateProposal_PricesAndDefaults(t *testing.T) {
	f := newFixture(t)

	p, err := f.create().Execute(context.Background(), f.input())
	require.NoError(t, err)

	assert.Equal(t, "PROP-20240315-042", p.Number)
	assert.Equal(t, valueobject.ProposalStatusDraft, p.Status)
	assert.Equal(t, "800", p.Items[0].UnitPrice.String())
	assert.Equal(t, "1600", p.Items[0].Total.String())
	assert.Equal(t, "360", p.Items[1].Total.String())
	assert.Equal(t, "1960", p.Subtotal.String())
	assert.Equal(t, "1900", p.Total.String())
	assert.Equal(t, f.clock.Now().Add(proposal.DefaultValidity), p.ValidUntil)

	stored, err := f.proposals.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Number, stored.Number)
}

func TestCreateProposal_DiscountClampedToSubtotal(t *testing.T) {
	f := newFixture(t)
	in := f.input()
	in.Discount = decimal.NewFromInt(100000)

	p, err := f.create().Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "1960", p.Discount.String())
	assert.True(t, p.Total.IsZero())

	in.Discount = decimal.NewFromInt(-5)
	p, err = f.create().Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, p.Discount.IsZero())
}

func TestCreateProposal_RequiredFields(t *testing.T) {
	f := newFixture(t)
	cases := map[string]func(*proposal.ProposalInput){
		"no client": func(in *proposal.ProposalInput) { in.ClientID = "" },
		"no title":  func(in *proposal.ProposalInput) { in.Title = "  " },
		"no items":  func(in *proposal.ProposalInput) { in.Items = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := f.input()
			mutate(&in)

			_, err := f.create().Execute(context.Background(), in)

			assert.ErrorIs(t, err, apperror.ErrRequiredFields)
		})
	}

	all, err := f.proposals.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateProposal_RejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	for _, qty := range []int{0, -3} {
		in := f.input()
		in.Items[0].Quantity = qty

		_, err := f.create().Execute(context.Background(), in)

		assert.True(t, apperror.IsValidation(err), "quantity %d", qty)
	}

	all, err := f.proposals.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateProposal_RejectsFinalStatus(t *testing.T) {
	f := newFixture(t)
	in := f.input()
	in.Status = valueobject.ProposalStatusApproved

	_, err := f.create().Execute(context.Background(), in)

	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateProposal_PreservesIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	in := f.input()
	in.Title = "Modernização v2"
	in.Items = in.Items[:1]
	in.Discount = decimal.Zero

	updated, err := proposal.NewUpdateProposalUseCase(f.proposals, f.services, f.clock).Execute(ctx, proposal.UpdateProposalInput{
		ID:            created.ID,
		ProposalInput: in,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Number, updated.Number)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, created.ValidUntil.Equal(updated.ValidUntil))
	assert.Equal(t, f.clock.Now(), updated.UpdatedAt)
	assert.Equal(t, "1600", updated.Total.String())

	all, err := f.proposals.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateProposalStatus_AnyTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)
	uc := proposal.NewUpdateProposalStatusUseCase(f.proposals, f.clock)

	for _, status := range []valueobject.ProposalStatus{
		valueobject.ProposalStatusRejected,
		valueobject.ProposalStatusSent,
		valueobject.ProposalStatusApproved,
		valueobject.ProposalStatusDraft,
	} {
		got, err := uc.Execute(ctx, proposal.UpdateProposalStatusInput{ID: p.ID, Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	_, err = uc.Execute(ctx, proposal.UpdateProposalStatusInput{ID: "missing", Status: valueobject.ProposalStatusSent})
	assert.ErrorIs(t, err, apperror.ErrProposalNotFound)
}

func TestListProposals_FiltersNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	in := f.input()
	in.Status = valueobject.ProposalStatusSent
	second, err := f.create().Execute(ctx, in)
	require.NoError(t, err)

	list := proposal.NewListProposalsUseCase(f.proposals)

	all, err := list.Execute(ctx, repository.ProposalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	sent, err := list.Execute(ctx, repository.ProposalFilter{Status: valueobject.ProposalStatusSent})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, second.ID, sent[0].ID)

	none, err := list.Execute(ctx, repository.ProposalFilter{ClientID: "other"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteProposal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)

	require.NoError(t, proposal.NewDeleteProposalUseCase(f.proposals).Execute(ctx, p.ID))

	_, err = proposal.NewGetProposalUseCase(f.proposals).Execute(ctx, p.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.Error(t, proposal.NewDeleteProposalUseCase(f.proposals).Execute(ctx, p.ID))
}

func TestProposalDetails_MissingClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)
	details := proposal.NewGetProposalDetailsUseCase(f.proposals, f.clients, f.services)

	d, err := details.Execute(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Empresa ABC Ltda", d.Client.Company)
	assert.Len(t, d.Services, 2)

	require.NoError(t, f.clients.Delete(ctx, f.client.ID))
	_, err = details.Execute(ctx, p.ID)
	assert.ErrorIs(t, err, apperror.ErrClientNotFound)
}

type fakeRenderer struct {
	got *entity.ProposalWithDetails
	err error
}

func (r *fakeRenderer) Render(d *entity.ProposalWithDetails) ([]byte, error) {
	r.got = d
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

type fakeArchiver struct {
	mu    sync.Mutex
	names []string
}

func (a *fakeArchiver) Save(_ context.Context, fileName string, _ []byte) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.names = append(a.names, fileName)
	return "2024-03-15/" + fileName, nil
}

func (a *fakeArchiver) saved() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.names...)
}

func TestExportProposalPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)
	renderer := &fakeRenderer{}
	archiver := &fakeArchiver{}
	uc := proposal.NewExportProposalPDFUseCase(
		proposal.NewGetProposalDetailsUseCase(f.proposals, f.clients, f.services), renderer, archiver)

	doc, err := uc.Execute(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "Proposta_PROP-20240315-042_Empresa ABC Ltda.pdf", doc.FileName)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, p.ID, renderer.got.ID)
	assert.Eventually(t, func() bool { return len(archiver.saved()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestExportProposalPDF_RenderError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.create().Execute(ctx, f.input())
	require.NoError(t, err)
	renderErr := apperror.New(apperror.ErrCodeRenderError, "falha")
	uc := proposal.NewExportProposalPDFUseCase(
		proposal.NewGetProposalDetailsUseCase(f.proposals, f.clients, f.services), &fakeRenderer{err: renderErr}, nil)

	_, err = uc.Execute(ctx, p.ID)

	assert.True(t, errors.Is(err, renderErr))
}

func TestPreviewProposalPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	renderer := &fakeRenderer{}
	uc := proposal.NewPreviewProposalPDFUseCase(f.clients, f.services, f.numbers, renderer, f.clock)

	doc, err := uc.Execute(ctx, f.input())
	require.NoError(t, err)
	assert.Equal(t, proposal.PreviewID, renderer.got.ID)
	assert.Equal(t, valueobject.ProposalStatusDraft, renderer.got.Status)
	assert.NotEmpty(t, doc.Content)

	all, err := f.proposals.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	in := f.input()
	in.Items = nil
	_, err = uc.Execute(ctx, in)
	assert.ErrorIs(t, err, apperror.ErrRequiredFields)
}

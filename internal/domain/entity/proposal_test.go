package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() entity.ServiceCatalog {
	return entity.ServiceCatalog{
		{ID: "srv-1", Name: "Configuração de Servidor", Price: dec("800")},
		{ID: "srv-2", Name: "Suporte Técnico Premium", Price: dec("150")},
	}
}

func assertTotalsConsistent(t *testing.T, p *entity.Proposal) {
	t.Helper()
	sum := decimal.Zero
	for _, item := range p.Items {
		assert.True(t, item.Total.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))),
			"item total %s != %d x %s", item.Total, item.Quantity, item.UnitPrice)
		sum = sum.Add(item.Total)
	}
	assert.True(t, p.Subtotal.Equal(sum), "subtotal %s != %s", p.Subtotal, sum)
	assert.True(t, p.Total.Equal(p.Subtotal.Sub(p.Discount)), "total %s", p.Total)
}

func TestProposal_ItemEditingKeepsTotalsConsistent(t *testing.T) {
	catalog := testCatalog()
	p := &entity.Proposal{}

	p.AddItem()
	assertTotalsConsistent(t, p)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 1, p.Items[0].Quantity)

	require.NoError(t, p.SelectItemService(0, "srv-1", catalog))
	assert.Equal(t, "800", p.Items[0].UnitPrice.String())
	assertTotalsConsistent(t, p)

	require.NoError(t, p.SetItemQuantity(0, 3))
	assert.Equal(t, "2400", p.Items[0].Total.String())
	assert.Equal(t, "800", p.Items[0].UnitPrice.String())
	assertTotalsConsistent(t, p)

	p.AddItem()
	require.NoError(t, p.SelectItemService(1, "srv-2", catalog))
	require.NoError(t, p.SetItemUnitPrice(1, dec("120")))
	assert.Equal(t, 1, p.Items[1].Quantity)
	assertTotalsConsistent(t, p)

	p.SetDiscount(dec("20"))
	assert.Equal(t, "2520", p.Subtotal.String())
	assert.Equal(t, "2500", p.Total.String())

	require.NoError(t, p.RemoveItem(0))
	assert.Equal(t, "120", p.Subtotal.String())
	assertTotalsConsistent(t, p)
}

func TestProposal_ServiceChangeResetsManualPrice(t *testing.T) {
	catalog := testCatalog()
	p := &entity.Proposal{}
	p.AddItem()
	require.NoError(t, p.SelectItemService(0, "srv-1", catalog))
	require.NoError(t, p.SetItemUnitPrice(0, dec("500")))
	require.NoError(t, p.SetItemQuantity(0, 2))
	assert.Equal(t, "500", p.Items[0].UnitPrice.String())

	require.NoError(t, p.SelectItemService(0, "srv-2", catalog))

	assert.Equal(t, "150", p.Items[0].UnitPrice.String())
	assert.Equal(t, "300", p.Items[0].Total.String())
}

func TestProposal_SelectUnknownServiceKeepsPrice(t *testing.T) {
	p := &entity.Proposal{}
	p.AddItem()
	require.NoError(t, p.SetItemUnitPrice(0, dec("42")))

	require.NoError(t, p.SelectItemService(0, "gone", testCatalog()))

	assert.Equal(t, "gone", p.Items[0].ServiceID)
	assert.Equal(t, "42", p.Items[0].UnitPrice.String())
}

func TestProposal_IndexOutOfRange(t *testing.T) {
	p := &entity.Proposal{}

	err := p.SetItemQuantity(0, 2)
	assert.Equal(t, apperror.ErrCodeBadRequest, apperror.CodeOf(err))
	assert.Error(t, p.RemoveItem(-1))
}

func TestProposal_Validate(t *testing.T) {
	valid := entity.Proposal{ClientID: "c1", Title: "Infra", Items: []entity.ProposalItem{{ServiceID: "s", Quantity: 1}}}
	assert.NoError(t, valid.Validate())

	noClient := valid
	noClient.ClientID = ""
	assert.ErrorIs(t, noClient.Validate(), apperror.ErrRequiredFields)

	noTitle := valid
	noTitle.Title = "   "
	assert.True(t, apperror.IsValidation(noTitle.Validate()))

	noItems := valid
	noItems.Items = nil
	assert.True(t, apperror.IsValidation(noItems.Validate()))
}

func TestProposal_CreatedWithinIsInclusive(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	assert.True(t, (&entity.Proposal{CreatedAt: start}).CreatedWithin(start, end))
	assert.True(t, (&entity.Proposal{CreatedAt: end}).CreatedWithin(start, end))
	assert.False(t, (&entity.Proposal{CreatedAt: end.Add(time.Second)}).CreatedWithin(start, end))
	assert.False(t, (&entity.Proposal{CreatedAt: start.Add(-time.Nanosecond)}).CreatedWithin(start, end))
}

func TestProposal_ChangeStatusIsUnordered(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := &entity.Proposal{Status: valueobject.ProposalStatusRejected}

	require.NoError(t, p.ChangeStatus(valueobject.ProposalStatusDraft, now))
	assert.Equal(t, valueobject.ProposalStatusDraft, p.Status)
	assert.Equal(t, now, p.UpdatedAt)

	assert.Error(t, p.ChangeStatus("archived", now))
}

func TestProposalWithDetails_ResolvedItemsSkipsMissingServices(t *testing.T) {
	d := entity.ProposalWithDetails{
		Proposal: entity.Proposal{Items: []entity.ProposalItem{
			{ServiceID: "srv-1", Quantity: 1},
			{ServiceID: "deleted", Quantity: 2},
			{ServiceID: "srv-2", Quantity: 3},
		}},
		Services: testCatalog(),
	}

	resolved := d.ResolvedItems()

	require.Len(t, resolved, 2)
	assert.Equal(t, "srv-1", resolved[0].Service.ID)
	assert.Equal(t, 3, resolved[1].Item.Quantity)

	_, ok := d.ServiceByID("deleted")
	assert.False(t, ok)
}

func TestClient_ApplyPreservesIdentity(t *testing.T) {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	taxID := "12.345.678/0001-90"
	c := entity.NewClient(entity.ClientFields{Name: "João", Company: "ABC", TaxID: &taxID}, created)
	id := c.ID

	blank := "  "
	c.Apply(entity.ClientFields{Name: "João Silva", Company: "ABC Ltda", TaxID: &blank})

	assert.Equal(t, id, c.ID)
	assert.Equal(t, created, c.CreatedAt)
	assert.Equal(t, "João Silva", c.Name)
	assert.Nil(t, c.TaxID)
	assert.True(t, c.Matches("abc"))
	assert.False(t, c.Matches("xyz"))
}

package reporting_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/reporting"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
)

var march = reporting.DateRange{
	Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
}

func proposal(id, clientID string, status valueobject.ProposalStatus, total string, created time.Time, items ...entity.ProposalItem) *entity.Proposal {
	return &entity.Proposal{
		ID:        id,
		ClientID:  clientID,
		Status:    status,
		Total:     decimal.RequireFromString(total),
		CreatedAt: created,
		Items:     items,
	}
}

func item(serviceID string, qty int, total string) entity.ProposalItem {
	return entity.ProposalItem{ServiceID: serviceID, Quantity: qty, Total: decimal.RequireFromString(total)}
}

func TestAggregate_Summary(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	proposals := []*entity.Proposal{
		proposal("p1", "c1", valueobject.ProposalStatusApproved, "1000", day),
		proposal("p2", "c1", valueobject.ProposalStatusApproved, "500", day),
		proposal("p3", "c2", valueobject.ProposalStatusSent, "200", day),
	}

	report := reporting.Aggregate(proposals, nil, nil, march)

	assert.Equal(t, 3, report.Summary.TotalProposals)
	assert.Equal(t, 2, report.Summary.ApprovedProposals)
	assert.Equal(t, "66.7", report.Summary.ConversionRate.StringFixed(1))
	assert.Equal(t, "1500", report.Summary.TotalRevenue.String())
	assert.Equal(t, "750", report.Summary.AverageValue.String())
}

func TestAggregate_EmptyRangeYieldsZeros(t *testing.T) {
	outside := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	proposals := []*entity.Proposal{proposal("p1", "c1", valueobject.ProposalStatusApproved, "1000", outside)}

	report := reporting.Aggregate(proposals, nil, nil, march)

	assert.Equal(t, 0, report.Summary.TotalProposals)
	assert.True(t, report.Summary.ConversionRate.IsZero())
	assert.True(t, report.Summary.AverageValue.IsZero())
	require.Len(t, report.StatusDistribution, 4)
	for _, sc := range report.StatusDistribution {
		assert.Equal(t, 0, sc.Count)
		assert.True(t, sc.Percentage.IsZero())
	}
	assert.Empty(t, report.TopClients)
	assert.Empty(t, report.TopServices)
}

func TestAggregate_BoundsAreInclusive(t *testing.T) {
	proposals := []*entity.Proposal{
		proposal("p1", "c1", valueobject.ProposalStatusDraft, "1", march.Start),
		proposal("p2", "c1", valueobject.ProposalStatusDraft, "1", march.End),
		proposal("p3", "c1", valueobject.ProposalStatusDraft, "1", march.End.Add(time.Nanosecond)),
	}

	report := reporting.Aggregate(proposals, nil, nil, march)

	assert.Equal(t, 2, report.Summary.TotalProposals)
}

func TestAggregate_StatusDistributionFixedOrder(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	proposals := []*entity.Proposal{
		proposal("p1", "c1", valueobject.ProposalStatusRejected, "1", day),
		proposal("p2", "c1", valueobject.ProposalStatusRejected, "1", day),
		proposal("p3", "c1", valueobject.ProposalStatusDraft, "1", day),
		proposal("p4", "c1", valueobject.ProposalStatusSent, "1", day),
	}

	report := reporting.Aggregate(proposals, nil, nil, march)

	require.Len(t, report.StatusDistribution, 4)
	assert.Equal(t, valueobject.ProposalStatusDraft, report.StatusDistribution[0].Status)
	assert.Equal(t, valueobject.ProposalStatusApproved, report.StatusDistribution[2].Status)
	assert.Equal(t, 0, report.StatusDistribution[2].Count)
	assert.Equal(t, 2, report.StatusDistribution[3].Count)
	assert.Equal(t, "50", report.StatusDistribution[3].Percentage.String())
}

func TestAggregate_TopClients(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	clients := make([]*entity.Client, 0, 7)
	for i := 1; i <= 7; i++ {
		clients = append(clients, &entity.Client{ID: fmt.Sprintf("c%d", i), Name: fmt.Sprintf("Cliente %d", i)})
	}
	proposals := []*entity.Proposal{
		proposal("p1", "c1", valueobject.ProposalStatusSent, "9000", day),
		proposal("p2", "c2", valueobject.ProposalStatusApproved, "100", day),
		proposal("p3", "c3", valueobject.ProposalStatusApproved, "300", day),
		proposal("p4", "c3", valueobject.ProposalStatusRejected, "50", day),
		proposal("p5", "c4", valueobject.ProposalStatusApproved, "200", day),
		proposal("p6", "c5", valueobject.ProposalStatusApproved, "400", day),
		proposal("p7", "c6", valueobject.ProposalStatusApproved, "500", day),
		proposal("p8", "ghost", valueobject.ProposalStatusApproved, "99999", day),
	}

	report := reporting.Aggregate(proposals, clients, nil, march)

	require.Len(t, report.TopClients, 5)
	ids := make([]string, 0, 5)
	for _, r := range report.TopClients {
		ids = append(ids, r.Client.ID)
	}
	assert.Equal(t, []string{"c6", "c5", "c3", "c4", "c2"}, ids)
	assert.Equal(t, 2, report.TopClients[2].ProposalCount)
	assert.Equal(t, "300", report.TopClients[2].TotalValue.String())
}

func TestAggregate_TopClientsTiesKeepCollectionOrder(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	clients := []*entity.Client{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	proposals := []*entity.Proposal{
		proposal("p1", "c", valueobject.ProposalStatusDraft, "10", day),
		proposal("p2", "a", valueobject.ProposalStatusDraft, "10", day),
		proposal("p3", "b", valueobject.ProposalStatusDraft, "10", day),
	}

	report := reporting.Aggregate(proposals, clients, nil, march)

	require.Len(t, report.TopClients, 3)
	assert.Equal(t, "a", report.TopClients[0].Client.ID)
	assert.Equal(t, "b", report.TopClients[1].Client.ID)
	assert.Equal(t, "c", report.TopClients[2].Client.ID)
}

func TestAggregate_TopServices(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	services := []*entity.Service{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
	proposals := []*entity.Proposal{
		proposal("p1", "c1", valueobject.ProposalStatusApproved, "0", day,
			item("s1", 2, "400"), item("s2", 1, "50")),
		proposal("p2", "c1", valueobject.ProposalStatusDraft, "0", day,
			item("s2", 10, "500"), item("deleted", 3, "30")),
	}

	report := reporting.Aggregate(proposals, nil, services, march)

	require.Len(t, report.TopServices, 2)
	assert.Equal(t, "s1", report.TopServices[0].Service.ID)
	assert.Equal(t, 2, report.TopServices[0].Usage)
	assert.Equal(t, "400", report.TopServices[0].Revenue.String())
	assert.Equal(t, "s2", report.TopServices[1].Service.ID)
	assert.Equal(t, 11, report.TopServices[1].Usage)
	assert.Equal(t, "50", report.TopServices[1].Revenue.String())
}

func TestAggregate_TopServicesKeepsFiveByRevenue(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	services := []*entity.Service{{ID: "unused"}}
	revenues := []string{"100", "700", "300", "600", "200", "500", "400"}
	items := make([]entity.ProposalItem, 0, len(revenues))
	for i, rev := range revenues {
		id := fmt.Sprintf("s%d", i+1)
		services = append(services, &entity.Service{ID: id})
		items = append(items, item(id, 1, rev))
	}
	proposals := []*entity.Proposal{
		proposal("p1", "c1", valueobject.ProposalStatusApproved, "2800", day, items...),
	}

	report := reporting.Aggregate(proposals, nil, services, march)

	require.Len(t, report.TopServices, 5)
	ids := make([]string, 0, 5)
	for i, r := range report.TopServices {
		ids = append(ids, r.Service.ID)
		assert.Positive(t, r.Usage)
		if i > 0 {
			assert.True(t, report.TopServices[i-1].Revenue.GreaterThanOrEqual(r.Revenue))
		}
	}
	assert.Equal(t, []string{"s2", "s4", "s6", "s7", "s3"}, ids)
	assert.NotContains(t, ids, "unused")
	assert.Equal(t, "700", report.TopServices[0].Revenue.String())
}

package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
)

const topLimit = 5

type Summary struct {
	TotalProposals    int
	ApprovedProposals int
	TotalRevenue      decimal.Decimal
	// ConversionRate: процент одобренных, 0..100.
	ConversionRate decimal.Decimal
	AverageValue   decimal.Decimal
}

type StatusCount struct {
	Status     valueobject.ProposalStatus
	Count      int
	Percentage decimal.Decimal
}

type ClientRanking struct {
	Client        *entity.Client
	ProposalCount int
	TotalValue    decimal.Decimal
}

type ServiceRanking struct {
	Service *entity.Service
	Usage   int
	Revenue decimal.Decimal
}

type Report struct {
	Period             DateRange
	Summary            Summary
	StatusDistribution []StatusCount
	TopClients         []ClientRanking
	TopServices        []ServiceRanking
}

// Aggregate считает отчёт по предложениям, созданным внутри периода.
// Предложения с удалёнными клиентами или услугами в рейтинги не попадают.
func Aggregate(proposals []*entity.Proposal, clients []*entity.Client, services []*entity.Service, period DateRange) Report {
	inRange := make([]*entity.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if period.Contains(p.CreatedAt) {
			inRange = append(inRange, p)
		}
	}

	return Report{
		Period:             period,
		Summary:            summarize(inRange),
		StatusDistribution: distribution(inRange),
		TopClients:         rankClients(inRange, clients),
		TopServices:        rankServices(inRange, services),
	}
}

func summarize(proposals []*entity.Proposal) Summary {
	s := Summary{TotalProposals: len(proposals), TotalRevenue: decimal.Zero}
	for _, p := range proposals {
		if p.IsApproved() {
			s.ApprovedProposals++
			s.TotalRevenue = s.TotalRevenue.Add(p.Total)
		}
	}
	s.ConversionRate = valueobject.Percent(s.ApprovedProposals, s.TotalProposals)
	s.AverageValue = valueobject.SafeDiv(s.TotalRevenue, decimal.NewFromInt(int64(s.ApprovedProposals)))
	return s
}

func distribution(proposals []*entity.Proposal) []StatusCount {
	statuses := valueobject.AllProposalStatuses()
	counts := make(map[valueobject.ProposalStatus]int, len(statuses))
	for _, p := range proposals {
		counts[p.Status]++
	}

	result := make([]StatusCount, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, StatusCount{
			Status:     status,
			Count:      counts[status],
			Percentage: valueobject.Percent(counts[status], len(proposals)),
		})
	}
	return result
}

func rankClients(proposals []*entity.Proposal, clients []*entity.Client) []ClientRanking {
	rankings := make([]ClientRanking, 0)
	for _, c := range clients {
		r := ClientRanking{Client: c, TotalValue: decimal.Zero}
		for _, p := range proposals {
			if p.ClientID != c.ID {
				continue
			}
			r.ProposalCount++
			if p.IsApproved() {
				r.TotalValue = r.TotalValue.Add(p.Total)
			}
		}
		if r.ProposalCount > 0 {
			rankings = append(rankings, r)
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalValue.GreaterThan(rankings[j].TotalValue)
	})
	if len(rankings) > topLimit {
		rankings = rankings[:topLimit]
	}
	return rankings
}

func rankServices(proposals []*entity.Proposal, services []*entity.Service) []ServiceRanking {
	rankings := make([]ServiceRanking, 0)
	for _, s := range services {
		r := ServiceRanking{Service: s, Revenue: decimal.Zero}
		for _, p := range proposals {
			for _, item := range p.Items {
				if item.ServiceID != s.ID {
					continue
				}
				r.Usage += item.Quantity
				if p.IsApproved() {
					r.Revenue = r.Revenue.Add(item.Total)
				}
			}
		}
		if r.Usage > 0 {
			rankings = append(rankings, r)
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Revenue.GreaterThan(rankings[j].Revenue)
	})
	if len(rankings) > topLimit {
		rankings = rankings[:topLimit]
	}
	return rankings
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/reporting"
)

type ReportSummaryResponse struct {
	TotalProposals    int             `json:"totalProposals"`
	ApprovedProposals int             `json:"approvedProposals"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	ConversionRate    decimal.Decimal `json:"conversionRate"`
	AverageValue      decimal.Decimal `json:"averageValue"`
}

type StatusCountResponse struct {
	Status     string          `json:"status"`
	Label      string          `json:"label"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

type ClientRankingResponse struct {
	Client        ClientResponse  `json:"client"`
	ProposalCount int             `json:"proposalCount"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

type ServiceRankingResponse struct {
	Service ServiceResponse `json:"service"`
	Usage   int             `json:"usage"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ReportResponse: тот же документ, что уходит в файл выгрузки.
type ReportResponse struct {
	Period             string                   `json:"period"`
	Summary            ReportSummaryResponse    `json:"summary"`
	StatusDistribution []StatusCountResponse    `json:"statusDistribution"`
	TopClients         []ClientRankingResponse  `json:"topClients"`
	TopServices        []ServiceRankingResponse `json:"topServices"`
}

func ToReportResponse(r *reporting.Report) ReportResponse {
	resp := ReportResponse{
		Period: r.Period.Label(),
		Summary: ReportSummaryResponse{
			TotalProposals:    r.Summary.TotalProposals,
			ApprovedProposals: r.Summary.ApprovedProposals,
			TotalRevenue:      r.Summary.TotalRevenue,
			ConversionRate:    r.Summary.ConversionRate,
			AverageValue:      r.Summary.AverageValue,
		},
		StatusDistribution: make([]StatusCountResponse, 0, len(r.StatusDistribution)),
		TopClients:         make([]ClientRankingResponse, 0, len(r.TopClients)),
		TopServices:        make([]ServiceRankingResponse, 0, len(r.TopServices)),
	}
	for _, s := range r.StatusDistribution {
		resp.StatusDistribution = append(resp.StatusDistribution, StatusCountResponse{
			Status:     string(s.Status),
			Label:      s.Status.Label(),
			Count:      s.Count,
			Percentage: s.Percentage,
		})
	}
	for _, c := range r.TopClients {
		resp.TopClients = append(resp.TopClients, ClientRankingResponse{
			Client:        ToClientResponse(c.Client),
			ProposalCount: c.ProposalCount,
			TotalValue:    c.TotalValue,
		})
	}
	for _, s := range r.TopServices {
		resp.TopServices = append(resp.TopServices, ServiceRankingResponse{
			Service: ToServiceResponse(s.Service),
			Usage:   s.Usage,
			Revenue: s.Revenue,
		})
	}
	return resp
}

// PresentReport: презентер для выгрузки отчёта.
func PresentReport(r *reporting.Report) any {
	return ToReportResponse(r)
}

package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/reporting"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/proposal"
)

type ProposalItemRequest struct {
	ServiceID string           `json:"serviceId"`
	Quantity  int              `json:"quantity" binding:"min=1"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

type ProposalRequest struct {
	ClientID    string                `json:"clientId"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Items       []ProposalItemRequest `json:"items" binding:"dive"`
	Discount    decimal.Decimal       `json:"discount"`
	// ValidUntil: YYYY-MM-DD или RFC 3339.
	ValidUntil *string `json:"validUntil"`
	Notes      *string `json:"notes"`
	Status     string  `json:"status"`
}

func (r ProposalRequest) ToInput() (proposal.ProposalInput, error) {
	input := proposal.ProposalInput{
		ClientID:    r.ClientID,
		Title:       r.Title,
		Description: r.Description,
		Items:       make([]proposal.ItemInput, 0, len(r.Items)),
		Discount:    r.Discount,
		Notes:       r.Notes,
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, proposal.ItemInput{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if r.ValidUntil != nil && strings.TrimSpace(*r.ValidUntil) != "" {
		validUntil, err := parseDate(*r.ValidUntil)
		if err != nil {
			return proposal.ProposalInput{}, err
		}
		input.ValidUntil = &validUntil
	}

	if r.Status != "" {
		status, err := valueobject.NewProposalStatus(r.Status)
		if err != nil {
			return proposal.ProposalInput{}, err
		}
		input.Status = status
	}
	return input, nil
}

type UpdateProposalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateProposalStatusRequest) ToStatus() (valueobject.ProposalStatus, error) {
	return valueobject.NewProposalStatus(r.Status)
}

type ProposalItemResponse struct {
	ServiceID string          `json:"serviceId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

type ProposalResponse struct {
	ID          string                 `json:"id"`
	ClientID    string                 `json:"clientId"`
	Number      string                 `json:"number"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Items       []ProposalItemResponse `json:"items"`
	Subtotal    decimal.Decimal        `json:"subtotal"`
	Discount    decimal.Decimal        `json:"discount"`
	Total       decimal.Decimal        `json:"total"`
	Status      string                 `json:"status"`
	StatusLabel string                 `json:"statusLabel"`
	ValidUntil  time.Time              `json:"validUntil"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	Notes       *string                `json:"notes,omitempty"`
}

func ToProposalResponse(p *entity.Proposal) ProposalResponse {
	items := make([]ProposalItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, ProposalItemResponse{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return ProposalResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Number:      p.Number,
		Title:       p.Title,
		Description: p.Description,
		Items:       items,
		Subtotal:    p.Subtotal,
		Discount:    p.Discount,
		Total:       p.Total,
		Status:      string(p.Status),
		StatusLabel: p.Status.Label(),
		ValidUntil:  p.ValidUntil,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Notes:       p.Notes,
	}
}

func ToProposalResponses(proposals []*entity.Proposal) []ProposalResponse {
	responses := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		responses = append(responses, ToProposalResponse(p))
	}
	return responses
}

// ResolvedItemResponse: строка вместе с услугой каталога.
type ResolvedItemResponse struct {
	ProposalItemResponse
	Service ServiceResponse `json:"service"`
}

type ProposalDetailsResponse struct {
	ProposalResponse
	Client        ClientResponse         `json:"client"`
	ResolvedItems []ResolvedItemResponse `json:"resolvedItems"`
}

func ToProposalDetailsResponse(d *entity.ProposalWithDetails) ProposalDetailsResponse {
	resolved := d.ResolvedItems()
	items := make([]ResolvedItemResponse, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, ResolvedItemResponse{
			ProposalItemResponse: ProposalItemResponse{
				ServiceID: r.Item.ServiceID,
				Quantity:  r.Item.Quantity,
				UnitPrice: r.Item.UnitPrice,
				Total:     r.Item.Total,
			},
			Service: ToServiceResponse(r.Service),
		})
	}
	return ProposalDetailsResponse{
		ProposalResponse: ToProposalResponse(&d.Proposal),
		Client:           ToClientResponse(&d.Client),
		ResolvedItems:    items,
	}
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(reporting.DateLayout, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperror.New(apperror.ErrCodeBadRequest, "некорректная дата: "+value)
	}
	return t, nil
}

package dto

import (
	"time"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
)

type ClientRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company string  `json:"company"`
	TaxID   *string `json:"cnpj"`
	Address string  `json:"address"`
}

func (r ClientRequest) ToFields() entity.ClientFields {
	return entity.ClientFields{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		TaxID:   r.TaxID,
		Address: r.Address,
	}
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	TaxID     *string   `json:"cnpj,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		TaxID:     c.TaxID,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func ToClientResponses(clients []*entity.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}
	return responses
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
)

type ServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
}

// ToFields разбирает категорию; принимаются и старые португальские значения.
func (r ServiceRequest) ToFields() (entity.ServiceFields, error) {
	category := valueobject.ServiceCategoryOther
	if r.Category != "" {
		parsed, err := valueobject.NewServiceCategory(r.Category)
		if err != nil {
			return entity.ServiceFields{}, err
		}
		category = parsed
	}
	return entity.ServiceFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    category,
		Unit:        r.Unit,
	}, nil
}

type ServiceResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"categoryLabel"`
	Unit          string          `json:"unit"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func ToServiceResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		Category:      string(s.Category),
		CategoryLabel: s.Category.Label(),
		Unit:          s.Unit,
		CreatedAt:     s.CreatedAt,
	}
}

func ToServiceResponses(services []*entity.Service) []ServiceResponse {
	responses := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		responses = append(responses, ToServiceResponse(s))
	}
	return responses
}

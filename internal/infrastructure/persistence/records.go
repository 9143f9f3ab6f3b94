package persistence

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
)

// Формат записей совпадает с данными браузерной версии приложения,
// поэтому CNPJ хранится под ключом "cnpj", а статусы могут быть на португальском.

type clientRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CNPJ      *string   `json:"cnpj,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r clientRecord) RecordID() string { return r.ID }

func newClientRecord(c *entity.Client) clientRecord {
	return clientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CNPJ:      c.TaxID,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (r clientRecord) toEntity() *entity.Client {
	return &entity.Client{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		TaxID:     r.CNPJ,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
	}
}

type serviceRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r serviceRecord) RecordID() string { return r.ID }

func newServiceRecord(s *entity.Service) serviceRecord {
	return serviceRecord{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Category:    string(s.Category),
		Unit:        s.Unit,
		CreatedAt:   s.CreatedAt,
	}
}

func (r serviceRecord) toEntity() *entity.Service {
	category, err := valueobject.NewServiceCategory(r.Category)
	if err != nil {
		logger.Component("persistence").
			WithField("service_id", r.ID).
			WithField("category", r.Category).
			Warn("неизвестная категория услуги, используем other")
		category = valueobject.ServiceCategoryOther
	}
	return &entity.Service{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    category,
		Unit:        r.Unit,
		CreatedAt:   r.CreatedAt,
	}
}

type proposalItemRecord struct {
	ServiceID string          `json:"serviceId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

type proposalRecord struct {
	ID          string               `json:"id"`
	ClientID    string               `json:"clientId"`
	Number      string               `json:"number"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Items       []proposalItemRecord `json:"items"`
	Subtotal    decimal.Decimal      `json:"subtotal"`
	Discount    decimal.Decimal      `json:"discount"`
	Total       decimal.Decimal      `json:"total"`
	Status      string               `json:"status"`
	ValidUntil  time.Time            `json:"validUntil"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Notes       *string              `json:"notes,omitempty"`
}

func (r proposalRecord) RecordID() string { return r.ID }

func newProposalRecord(p *entity.Proposal) proposalRecord {
	items := make([]proposalItemRecord, len(p.Items))
	for i, item := range p.Items {
		items[i] = proposalItemRecord{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}
	return proposalRecord{
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
		ValidUntil:  p.ValidUntil,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Notes:       p.Notes,
	}
}

// toEntity восстанавливает предложение как есть: сохранённые итоги не пересчитываются.
func (r proposalRecord) toEntity() *entity.Proposal {
	status, err := valueobject.NewProposalStatus(r.Status)
	if err != nil {
		logger.Component("persistence").
			WithField("proposal_id", r.ID).
			WithField("status", r.Status).
			Warn("неизвестный статус предложения, используем draft")
		status = valueobject.ProposalStatusDraft
	}

	items := make([]entity.ProposalItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = entity.ProposalItem{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}

	return &entity.Proposal{
		ID:          r.ID,
		ClientID:    r.ClientID,
		Number:      r.Number,
		Title:       r.Title,
		Description: r.Description,
		Items:       items,
		Subtotal:    r.Subtotal,
		Discount:    r.Discount,
		Total:       r.Total,
		Status:      status,
		ValidUntil:  r.ValidUntil,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Notes:       r.Notes,
	}
}

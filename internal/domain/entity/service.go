package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
)

// Service: позиция каталога услуг.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    valueobject.ServiceCategory
	Unit        string
	CreatedAt   time.Time
}

type ServiceFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    valueobject.ServiceCategory
	Unit        string
}

func NewService(fields ServiceFields, now time.Time) *Service {
	s := &Service{
		ID:        NewID(),
		CreatedAt: now,
	}
	s.Apply(fields)
	return s
}

func (s *Service) Apply(fields ServiceFields) {
	s.Name = fields.Name
	s.Description = fields.Description
	s.Price = fields.Price
	s.Category = fields.Category
	s.Unit = fields.Unit
}

func (s *Service) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.Description), term)
}

// ServiceCatalog: каталог услуг со слабыми ссылками по ID.
type ServiceCatalog []*Service

// Lookup ищет услугу; отсутствие услуги допустимо, её могли удалить.
func (c ServiceCatalog) Lookup(id string) (*Service, bool) {
	for _, s := range c {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

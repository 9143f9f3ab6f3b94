package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/pricing"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

// ProposalItem: строка предложения. Хранится только внутри Proposal.
type ProposalItem struct {
	ServiceID string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type Proposal struct {
	ID          string
	ClientID    string
	Number      string
	Title       string
	Description string
	Items       []ProposalItem
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	Status      valueobject.ProposalStatus
	ValidUntil  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Notes       *string
}

// Validate проверяет единственное правило перед сохранением: клиент, заголовок и хотя бы одна строка.
func (p *Proposal) Validate() error {
	if strings.TrimSpace(p.ClientID) == "" || strings.TrimSpace(p.Title) == "" || len(p.Items) == 0 {
		return apperror.ErrRequiredFields
	}
	return nil
}

// Recalculate пересчитывает итоги строк, subtotal и total.
func (p *Proposal) Recalculate() {
	lines := make([]pricing.Line, len(p.Items))
	for i, item := range p.Items {
		lines[i] = pricing.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	totals := pricing.Calculate(lines, p.Discount)
	for i := range p.Items {
		p.Items[i].Total = totals.LineTotals[i]
	}
	p.Subtotal = totals.Subtotal
	p.Total = totals.Total
}

// AddItem добавляет пустую строку: количество 1, цена 0.
func (p *Proposal) AddItem() {
	p.Items = append(p.Items, ProposalItem{
		Quantity:  1,
		UnitPrice: decimal.Zero,
		Total:     decimal.Zero,
	})
	p.Recalculate()
}

// SelectItemService меняет услугу строки и сбрасывает цену на цену каталога.
// Если услуги нет в каталоге, меняется только ссылка.
func (p *Proposal) SelectItemService(index int, serviceID string, catalog ServiceCatalog) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Items[index].ServiceID = serviceID
	if service, ok := catalog.Lookup(serviceID); ok {
		p.Items[index].UnitPrice = service.Price
	}
	p.Recalculate()
	return nil
}

func (p *Proposal) SetItemQuantity(index, quantity int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Items[index].Quantity = quantity
	p.Recalculate()
	return nil
}

// SetItemUnitPrice задаёт цену вручную; она живёт до следующей смены услуги.
func (p *Proposal) SetItemUnitPrice(index int, unitPrice decimal.Decimal) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Items[index].UnitPrice = unitPrice
	p.Recalculate()
	return nil
}

func (p *Proposal) RemoveItem(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Items = append(p.Items[:index], p.Items[index+1:]...)
	p.Recalculate()
	return nil
}

// SetDiscount не ограничивает скидку, ограничение делается на входе.
func (p *Proposal) SetDiscount(discount decimal.Decimal) {
	p.Discount = discount
	p.Recalculate()
}

func (p *Proposal) ChangeStatus(status valueobject.ProposalStatus, now time.Time) error {
	if !status.IsValid() {
		return apperror.New(apperror.ErrCodeValidation, "некорректный статус предложения")
	}
	p.Status = status
	p.UpdatedAt = now
	return nil
}

func (p *Proposal) IsApproved() bool {
	return p.Status == valueobject.ProposalStatusApproved
}

// CreatedWithin проверяет попадание даты создания в [start, end] включительно.
func (p *Proposal) CreatedWithin(start, end time.Time) bool {
	return !p.CreatedAt.Before(start) && !p.CreatedAt.After(end)
}

func (p *Proposal) checkIndex(index int) error {
	if index < 0 || index >= len(p.Items) {
		return apperror.New(apperror.ErrCodeBadRequest, "строка предложения не найдена")
	}
	return nil
}

// ProposalWithDetails: предложение с клиентом и каталогом для отчётов и PDF.
// Не сохраняется.
type ProposalWithDetails struct {
	Proposal
	Client   Client
	Services ServiceCatalog
}

// ResolvedItem: строка вместе с услугой каталога.
type ResolvedItem struct {
	Item    ProposalItem
	Service *Service
}

func (d *ProposalWithDetails) ServiceByID(id string) (*Service, bool) {
	return d.Services.Lookup(id)
}

// ResolvedItems возвращает строки, чья услуга есть в каталоге; остальные молча пропускаются.
func (d *ProposalWithDetails) ResolvedItems() []ResolvedItem {
	items := make([]ResolvedItem, 0, len(d.Items))
	for _, item := range d.Items {
		service, ok := d.Services.Lookup(item.ServiceID)
		if !ok {
			continue
		}
		items = append(items, ResolvedItem{Item: item, Service: service})
	}
	return items
}

package proposal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/pricing"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/repository"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

// DefaultValidity: срок действия предложения, если дата не указана.
const DefaultValidity = 30 * 24 * time.Hour

type ItemInput struct {
	ServiceID string
	Quantity  int
	// При UnitPrice nil берётся цена из каталога.
	UnitPrice *decimal.Decimal
}

// ProposalInput: содержимое формы предложения.
type ProposalInput struct {
	ClientID    string
	Title       string
	Description string
	Items       []ItemInput
	Discount    decimal.Decimal
	ValidUntil  *time.Time
	Notes       *string
	Status      valueobject.ProposalStatus
}

// fillDraft переносит форму в предложение, повторяя шаги редактора:
// выбор услуги подставляет цену каталога, ручная цена её перекрывает.
func fillDraft(p *entity.Proposal, input ProposalInput, catalog entity.ServiceCatalog, now time.Time) error {
	p.ClientID = strings.TrimSpace(input.ClientID)
	p.Title = strings.TrimSpace(input.Title)
	p.Description = input.Description
	p.Notes = input.Notes
	p.Items = nil
	p.Discount = decimal.Zero

	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return apperror.New(apperror.ErrCodeValidation,
				fmt.Sprintf("строка %d: количество должно быть больше нуля", i+1))
		}
		p.AddItem()
		if err := p.SelectItemService(i, item.ServiceID, catalog); err != nil {
			return err
		}
		if err := p.SetItemQuantity(i, item.Quantity); err != nil {
			return err
		}
		if item.UnitPrice != nil {
			if err := p.SetItemUnitPrice(i, *item.UnitPrice); err != nil {
				return err
			}
		}
	}

	p.SetDiscount(pricing.ClampDiscount(input.Discount, p.Subtotal))

	if input.ValidUntil != nil {
		p.ValidUntil = *input.ValidUntil
	} else if p.ValidUntil.IsZero() {
		p.ValidUntil = now.Add(DefaultValidity)
	}

	return p.Validate()
}

func loadCatalog(ctx context.Context, serviceRepo repository.ServiceRepository) (entity.ServiceCatalog, error) {
	services, err := serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entity.ServiceCatalog(services), nil
}

package entity

import (
	"strings"
	"time"
)

type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	TaxID     *string
	Address   string
	CreatedAt time.Time
}

// ClientFields: редактируемые поля клиента.
type ClientFields struct {
	Name    string
	Email   string
	Phone   string
	Company string
	TaxID   *string
	Address string
}

func NewClient(fields ClientFields, now time.Time) *Client {
	c := &Client{
		ID:        NewID(),
		CreatedAt: now,
	}
	c.Apply(fields)
	return c
}

// Apply переписывает поля, сохраняя ID и CreatedAt.
func (c *Client) Apply(fields ClientFields) {
	c.Name = fields.Name
	c.Email = fields.Email
	c.Phone = fields.Phone
	c.Company = fields.Company
	c.TaxID = normalizeOptional(fields.TaxID)
	c.Address = fields.Address
}

// Matches проверяет вхождение term в имя, компанию или email без учёта регистра.
func (c *Client) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Company), term) ||
		strings.Contains(strings.ToLower(c.Email), term)
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencySymbol: валюта всех сумм системы (реал).
const CurrencySymbol = "R$"

// FormatMoney форматирует сумму как "R$ 1234.50".
func FormatMoney(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", CurrencySymbol, amount.StringFixed(2))
}

// SafeDiv делит a на b, возвращая ноль при нулевом делителе.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Percent возвращает part/total*100, либо ноль при total == 0.
func Percent(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(total)))
}

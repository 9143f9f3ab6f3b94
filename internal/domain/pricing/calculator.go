// Package pricing считает суммы коммерческого предложения.
//
// Движок чисто арифметический: он не ограничивает скидку и не валидирует
// количество. Ограничение скидки диапазоном [0, subtotal] делает граница
// ввода через ClampDiscount.
package pricing

import "github.com/shopspring/decimal"

// Line: строка предложения: количество и цена за единицу.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Totals: результат расчёта.
type Totals struct {
	LineTotals []decimal.Decimal
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
}

// LineTotal = quantity × unitPrice.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal суммирует итоги строк.
func Subtotal(lineTotals []decimal.Decimal) decimal.Decimal {
	subtotal := decimal.Zero
	for _, t := range lineTotals {
		subtotal = subtotal.Add(t)
	}
	return subtotal
}

// Total = subtotal − discount, без ограничений.
func Total(subtotal, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount)
}

// Calculate пересчитывает строки, промежуточный итог и итог.
func Calculate(lines []Line, discount decimal.Decimal) Totals {
	lineTotals := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		lineTotals[i] = LineTotal(l.Quantity, l.UnitPrice)
	}
	subtotal := Subtotal(lineTotals)
	return Totals{
		LineTotals: lineTotals,
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      Total(subtotal, discount),
	}
}

// ClampDiscount приводит скидку к диапазону [0, subtotal].
func ClampDiscount(discount, subtotal decimal.Decimal) decimal.Decimal {
	if discount.IsNegative() {
		return decimal.Zero
	}
	if subtotal.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

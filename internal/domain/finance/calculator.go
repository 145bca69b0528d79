// Package finance derives line, discount, tax and document totals.
//
// Every amount is rounded to cents as it is produced, so the stored totals
// always satisfy:
//
//	subtotal = Σ line.total
//	total    = subtotal - discount + tax
package finance

import (
	"taskloop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const cents = 2

var hundred = decimal.NewFromInt(100)

// Totals is the result of pricing a document.
type Totals struct {
	LineItems      []entities.LineItem
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(cents)
}

// Subtotal sums the line totals, deriving each one from quantity and price.
func Subtotal(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	return sum
}

// DiscountAmount resolves a discount against the subtotal. The result is
// clamped to [0, subtotal].
func DiscountAmount(subtotal decimal.Decimal, d *entities.Discount) decimal.Decimal {
	if d == nil || !d.Value.IsPositive() || !subtotal.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch d.Type {
	case entities.DiscountTypePercentage:
		amount = subtotal.Mul(d.Value).Div(hundred).Round(cents)
	case entities.DiscountTypeFixed:
		amount = d.Value.Round(cents)
	default:
		return decimal.Zero
	}

	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

// TaxAmount applies a percentage rate to the post-discount base.
func TaxAmount(taxable, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() || !taxable.IsPositive() {
		return decimal.Zero
	}
	return taxable.Mul(rate).Div(hundred).Round(cents)
}

// Calculate prices a document. The returned line items are copies with
// Total rewritten.
func Calculate(items []entities.LineItem, discount *entities.Discount, taxRate decimal.Decimal) Totals {
	lines := make([]entities.LineItem, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		it.Total = LineTotal(it.Quantity, it.UnitPrice)
		lines[i] = it
		subtotal = subtotal.Add(it.Total)
	}

	discountAmount := DiscountAmount(subtotal, discount)
	taxable := subtotal.Sub(discountAmount)
	tax := TaxAmount(taxable, taxRate)

	return Totals{
		LineItems:      lines,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxable,
		TaxAmount:      tax,
		Total:          taxable.Add(tax),
	}
}

// Balance is what is still owed on a document.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	b := total.Sub(paid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

package usecase

import (
	"strings"
	"time"

	"taskloop/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// now is swapped in tests that need to observe timestamp changes.
var now = func() time.Time { return time.Now().UTC() }

// LineItemInput is a line item as submitted by a form. An empty ID gets a
// generated one.
type LineItemInput struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

func toLineItems(in []LineItemInput) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, entities.LineItem{
			ID:          id,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

func validLineItems(in []LineItemInput) bool {
	for _, it := range in {
		if !it.Quantity.IsPositive() || it.UnitPrice.IsNegative() {
			return false
		}
	}
	return true
}

func validDiscount(d *entities.Discount) bool {
	if d == nil {
		return true
	}
	if !d.Type.Valid() || d.Value.IsNegative() {
		return false
	}
	return d.Type != entities.DiscountTypePercentage || d.Value.LessThanOrEqual(decimal.NewFromInt(100))
}

func copyLineItems(in []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(in))
	copy(out, in)
	return out
}

// documentNumber derives a readable number from an entity id, e.g. "INV-1A2B3C4D".
func documentNumber(prefix, id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return prefix + "-" + strings.ToUpper(short)
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

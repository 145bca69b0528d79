package response

import (
	"taskloop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// money renders an amount as a JSON number rounded to cents.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, it := range items {
		out[i] = LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.InexactFloat64(),
			UnitPrice:   money(it.UnitPrice),
			Total:       money(it.Total),
		}
	}
	return out
}

type DiscountResponse struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

func fromDiscount(d *entities.Discount) *DiscountResponse {
	if d == nil {
		return nil
	}
	return &DiscountResponse{Type: string(d.Type), Value: d.Value.InexactFloat64()}
}

// ListResponse wraps collection results.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func NewList[E any, T any](in []E, conv func(E) T) ListResponse[T] {
	items := make([]T, len(in))
	for i, e := range in {
		items[i] = conv(e)
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

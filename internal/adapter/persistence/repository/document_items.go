package repository

import (
	"taskloop/internal/domain/entities"
)

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type discountItem struct {
	Type  string `dynamodbav:"type"`
	Value string `dynamodbav:"value"`
}

type addressItem struct {
	Street  string `dynamodbav:"street"`
	City    string `dynamodbav:"city"`
	State   string `dynamodbav:"state"`
	ZipCode string `dynamodbav:"zip_code"`
}

func toLineItemItems(items []entities.LineItem) []lineItemItem {
	out := make([]lineItemItem, len(items))
	for i, it := range items {
		out[i] = lineItemItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitPrice.String(),
			Total:       it.Total.String(),
		}
	}
	return out
}

func fromLineItemItems(items []lineItemItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    parseDecimal(it.Quantity),
			UnitPrice:   parseDecimal(it.UnitPrice),
			Total:       parseDecimal(it.Total),
		}
	}
	return out
}

func toDiscountItem(d *entities.Discount) *discountItem {
	if d == nil {
		return nil
	}
	return &discountItem{Type: string(d.Type), Value: d.Value.String()}
}

func fromDiscountItem(d *discountItem) *entities.Discount {
	if d == nil {
		return nil
	}
	return &entities.Discount{Type: entities.DiscountType(d.Type), Value: parseDecimal(d.Value)}
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func fromAddressItem(a addressItem) entities.Address {
	return entities.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func toAddressItemPtr(a *entities.Address) *addressItem {
	if a == nil {
		return nil
	}
	it := toAddressItem(*a)
	return &it
}

func fromAddressItemPtr(a *addressItem) *entities.Address {
	if a == nil {
		return nil
	}
	addr := fromAddressItem(*a)
	return &addr
}

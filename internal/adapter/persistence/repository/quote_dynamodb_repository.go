package repository

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type quoteItem struct {
	ID             string         `dynamodbav:"id"`
	ClientID       string         `dynamodbav:"client_id"`
	QuoteNumber    string         `dynamodbav:"quote_number"`
	Title          string         `dynamodbav:"title"`
	LineItems      []lineItemItem `dynamodbav:"line_items"`
	Discount       *discountItem  `dynamodbav:"discount,omitempty"`
	TaxRate        string         `dynamodbav:"tax_rate"`
	Subtotal       string         `dynamodbav:"subtotal"`
	DiscountAmount string         `dynamodbav:"discount_amount"`
	TaxAmount      string         `dynamodbav:"tax_amount"`
	Total          string         `dynamodbav:"total"`
	Status         string         `dynamodbav:"status"`
	ValidUntil     string         `dynamodbav:"valid_until"`
	Notes          string         `dynamodbav:"notes,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quotes.
//
// Table requirements:
//   - PK: id (string)
type QuoteDynamoRepository = DynamoRepository[entities.Quote, quoteItem]

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return newDynamoRepository(ddb, tableName, toQuoteItem, fromQuoteItem)
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		ClientID:       q.ClientID,
		QuoteNumber:    q.QuoteNumber,
		Title:          q.Title,
		LineItems:      toLineItemItems(q.LineItems),
		Discount:       toDiscountItem(q.Discount),
		TaxRate:        q.TaxRate.String(),
		Subtotal:       q.Subtotal.String(),
		DiscountAmount: q.DiscountAmount.String(),
		TaxAmount:      q.TaxAmount.String(),
		Total:          q.Total.String(),
		Status:         string(q.Status),
		ValidUntil:     formatTime(q.ValidUntil),
		Notes:          q.Notes,
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:             it.ID,
		ClientID:       it.ClientID,
		QuoteNumber:    it.QuoteNumber,
		Title:          it.Title,
		LineItems:      fromLineItemItems(it.LineItems),
		Discount:       fromDiscountItem(it.Discount),
		TaxRate:        parseDecimal(it.TaxRate),
		Subtotal:       parseDecimal(it.Subtotal),
		DiscountAmount: parseDecimal(it.DiscountAmount),
		TaxAmount:      parseDecimal(it.TaxAmount),
		Total:          parseDecimal(it.Total),
		Status:         entities.QuoteStatus(it.Status),
		ValidUntil:     parseTime(it.ValidUntil),
		Notes:          it.Notes,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

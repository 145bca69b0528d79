package repository

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type invoiceItem struct {
	ID             string         `dynamodbav:"id"`
	ClientID       string         `dynamodbav:"client_id"`
	JobID          string         `dynamodbav:"job_id,omitempty"`
	InvoiceNumber  string         `dynamodbav:"invoice_number"`
	Title          string         `dynamodbav:"title"`
	LineItems      []lineItemItem `dynamodbav:"line_items"`
	Discount       *discountItem  `dynamodbav:"discount,omitempty"`
	TaxRate        string         `dynamodbav:"tax_rate"`
	Subtotal       string         `dynamodbav:"subtotal"`
	DiscountAmount string         `dynamodbav:"discount_amount"`
	TaxAmount      string         `dynamodbav:"tax_amount"`
	Total          string         `dynamodbav:"total"`
	AmountPaid     string         `dynamodbav:"amount_paid"`
	Balance        string         `dynamodbav:"balance"`
	Status         string         `dynamodbav:"status"`
	IssueDate      string         `dynamodbav:"issue_date"`
	DueDate        string         `dynamodbav:"due_date"`
	Notes          string         `dynamodbav:"notes,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
}

type InvoiceDynamoRepository = DynamoRepository[entities.Invoice, invoiceItem]

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	return newDynamoRepository(ddb, tableName, toInvoiceItem, fromInvoiceItem)
}

func toInvoiceItem(i entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:             i.ID,
		ClientID:       i.ClientID,
		JobID:          i.JobID,
		InvoiceNumber:  i.InvoiceNumber,
		Title:          i.Title,
		LineItems:      toLineItemItems(i.LineItems),
		Discount:       toDiscountItem(i.Discount),
		TaxRate:        i.TaxRate.String(),
		Subtotal:       i.Subtotal.String(),
		DiscountAmount: i.DiscountAmount.String(),
		TaxAmount:      i.TaxAmount.String(),
		Total:          i.Total.String(),
		AmountPaid:     i.AmountPaid.String(),
		Balance:        i.Balance.String(),
		Status:         string(i.Status),
		IssueDate:      formatTime(i.IssueDate),
		DueDate:        formatTime(i.DueDate),
		Notes:          i.Notes,
		CreatedAt:      formatTime(i.CreatedAt),
		UpdatedAt:      formatTime(i.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:             it.ID,
		ClientID:       it.ClientID,
		JobID:          it.JobID,
		InvoiceNumber:  it.InvoiceNumber,
		Title:          it.Title,
		LineItems:      fromLineItemItems(it.LineItems),
		Discount:       fromDiscountItem(it.Discount),
		TaxRate:        parseDecimal(it.TaxRate),
		Subtotal:       parseDecimal(it.Subtotal),
		DiscountAmount: parseDecimal(it.DiscountAmount),
		TaxAmount:      parseDecimal(it.TaxAmount),
		Total:          parseDecimal(it.Total),
		AmountPaid:     parseDecimal(it.AmountPaid),
		Balance:        parseDecimal(it.Balance),
		Status:         entities.InvoiceStatus(it.Status),
		IssueDate:      parseTime(it.IssueDate),
		DueDate:        parseTime(it.DueDate),
		Notes:          it.Notes,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

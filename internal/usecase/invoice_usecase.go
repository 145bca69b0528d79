package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"taskloop/internal/domain/entities"
	"taskloop/internal/domain/finance"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvalidInvoiceID      = errors.New("invalid invoice id")
	ErrInvalidInvoice        = errors.New("invalid invoice")
	ErrInvalidInvoiceStatus  = errors.New("invalid invoice status")
	ErrExporterNotConfigured = errors.New("invoice exporter not configured")
)

const defaultPaymentTerms = 30 * 24 * time.Hour

type InvoiceInput struct {
	ClientID      string
	JobID         string
	InvoiceNumber string
	Title         string
	LineItems     []LineItemInput
	Discount      *entities.Discount
	TaxRate       decimal.Decimal
	Status        entities.InvoiceStatus
	IssueDate     time.Time
	DueDate       time.Time
	Notes         string
}

// InvoicePatch merges every non-nil field. ClearDiscount drops the discount.
type InvoicePatch struct {
	ClientID      *string
	JobID         *string
	InvoiceNumber *string
	Title         *string
	LineItems     *[]LineItemInput
	Discount      *entities.Discount
	ClearDiscount bool
	TaxRate       *decimal.Decimal
	Status        *entities.InvoiceStatus
	IssueDate     *time.Time
	DueDate       *time.Time
	Notes         *string
}

type InvoiceFilter struct {
	ClientID string
	JobID    string
	Status   entities.InvoiceStatus
}

// ExportResult is a rendered invoice export ready to be downloaded.
type ExportResult struct {
	ContentType string
	FileName    string
}

type IInvoiceUseCase interface {
	List(ctx context.Context, f InvoiceFilter) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Create(ctx context.Context, in InvoiceInput) (entities.Invoice, error)
	CreateFromJob(ctx context.Context, jobID string, taxRate decimal.Decimal) (entities.Invoice, error)
	Update(ctx context.Context, id string, p InvoicePatch) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) (ExportResult, error)
}

type InvoiceUseCase struct {
	repo       interfaces.IInvoiceRepository
	jobRepo    interfaces.IJobRepository
	clientRepo interfaces.IClientRepository
	exporter   interfaces.IInvoiceExporter
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	jobRepo interfaces.IJobRepository,
	clientRepo interfaces.IClientRepository,
	exporter interfaces.IInvoiceExporter,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, jobRepo: jobRepo, clientRepo: clientRepo, exporter: exporter}
}

func (u *InvoiceUseCase) List(ctx context.Context, f InvoiceFilter) ([]entities.Invoice, error) {
	invoices, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientID := strings.TrimSpace(f.ClientID)
	jobID := strings.TrimSpace(f.JobID)
	return filter(invoices, func(i entities.Invoice) bool {
		return (clientID == "" || i.ClientID == clientID) &&
			(jobID == "" || i.JobID == jobID) &&
			(f.Status == "" || i.Status == f.Status)
	}), nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Create(ctx context.Context, in InvoiceInput) (entities.Invoice, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" || strings.TrimSpace(in.Title) == "" {
		return entities.Invoice{}, ErrInvalidInvoice
	}
	if !validLineItems(in.LineItems) || !validDiscount(in.Discount) || in.TaxRate.IsNegative() {
		return entities.Invoice{}, ErrInvalidInvoice
	}
	status := in.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	ts := now()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		JobID:         strings.TrimSpace(in.JobID),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Title:         strings.TrimSpace(in.Title),
		LineItems:     toLineItems(in.LineItems),
		Discount:      in.Discount,
		TaxRate:       in.TaxRate,
		AmountPaid:    decimal.Zero,
		Status:        status,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	return u.create(ctx, inv)
}

// CreateFromJob drafts an invoice billing the job's line items.
func (u *InvoiceUseCase) CreateFromJob(ctx context.Context, jobID string, taxRate decimal.Decimal) (entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}
	if taxRate.IsNegative() {
		return entities.Invoice{}, ErrInvalidInvoice
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.ID == "" {
		return entities.Invoice{}, ErrJobNotFound
	}

	ts := now()
	inv := entities.Invoice{
		ID:         uuid.NewString(),
		ClientID:   job.ClientID,
		JobID:      job.ID,
		Title:      job.Title,
		LineItems:  copyLineItems(job.LineItems),
		TaxRate:    taxRate,
		AmountPaid: decimal.Zero,
		Status:     entities.InvoiceStatusDraft,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	return u.create(ctx, inv)
}

func (u *InvoiceUseCase) create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = documentNumber("INV", inv.ID)
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = inv.CreatedAt
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.IssueDate.Add(defaultPaymentTerms)
	}
	priceInvoice(&inv)

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	logging.For("invoice", "create").WithFields(logrus.Fields{
		"invoice_id": created.ID,
		"client_id":  created.ClientID,
		"job_id":     created.JobID,
		"total":      created.Total.StringFixed(2),
	}).Info("invoice created")
	return created, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, p InvoicePatch) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	if p.ClientID != nil {
		if strings.TrimSpace(*p.ClientID) == "" {
			return entities.Invoice{}, ErrInvalidInvoice
		}
		inv.ClientID = strings.TrimSpace(*p.ClientID)
	}
	if p.JobID != nil {
		inv.JobID = strings.TrimSpace(*p.JobID)
	}
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = strings.TrimSpace(*p.InvoiceNumber)
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return entities.Invoice{}, ErrInvalidInvoice
		}
		inv.Title = strings.TrimSpace(*p.Title)
	}
	if p.LineItems != nil {
		if !validLineItems(*p.LineItems) {
			return entities.Invoice{}, ErrInvalidInvoice
		}
		inv.LineItems = toLineItems(*p.LineItems)
	}
	if p.ClearDiscount {
		inv.Discount = nil
	} else if p.Discount != nil {
		if !validDiscount(p.Discount) {
			return entities.Invoice{}, ErrInvalidInvoice
		}
		inv.Discount = p.Discount
	}
	if p.TaxRate != nil {
		if p.TaxRate.IsNegative() {
			return entities.Invoice{}, ErrInvalidInvoice
		}
		inv.TaxRate = *p.TaxRate
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return entities.Invoice{}, ErrInvalidInvoiceStatus
		}
		inv.Status = *p.Status
	}
	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}

	priceInvoice(&inv)
	return u.save(ctx, inv)
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	return u.Update(ctx, id, InvoicePatch{Status: &status})
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrInvoiceNotFound
	}
	return nil
}

// Export writes every invoice, with its client's display name, to w.
// Invoices whose client was deleted are exported with an empty name.
func (u *InvoiceUseCase) Export(ctx context.Context, w io.Writer) (ExportResult, error) {
	if u.exporter == nil {
		return ExportResult{}, ErrExporterNotConfigured
	}

	invoices, err := u.repo.List(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.DisplayName()
	}

	if err := u.exporter.Export(w, invoices, names); err != nil {
		logging.LogError("invoice", "export", "render export", nil, err)
		return ExportResult{}, err
	}
	return ExportResult{
		ContentType: u.exporter.ContentType(),
		FileName:    "invoices-" + now().Format("2006-01-02") + u.exporter.FileExtension(),
	}, nil
}

func (u *InvoiceUseCase) save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.UpdatedAt = now()
	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func priceInvoice(inv *entities.Invoice) {
	t := finance.Calculate(inv.LineItems, inv.Discount, inv.TaxRate)
	inv.LineItems = t.LineItems
	inv.Subtotal = t.Subtotal
	inv.DiscountAmount = t.DiscountAmount
	inv.TaxAmount = t.TaxAmount
	inv.Total = t.Total
	inv.Balance = finance.Balance(inv.Total, inv.AmountPaid)
}

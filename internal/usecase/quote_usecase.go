package usecase

import (
	"context"
	"errors"
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
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuote       = errors.New("invalid quote")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

const defaultQuoteValidity = 30 * 24 * time.Hour

type QuoteInput struct {
	ClientID    string
	QuoteNumber string
	Title       string
	LineItems   []LineItemInput
	Discount    *entities.Discount
	TaxRate     decimal.Decimal
	Status      entities.QuoteStatus
	ValidUntil  time.Time
	Notes       string
}

// QuotePatch merges every non-nil field. ClearDiscount drops the discount.
type QuotePatch struct {
	ClientID      *string
	QuoteNumber   *string
	Title         *string
	LineItems     *[]LineItemInput
	Discount      *entities.Discount
	ClearDiscount bool
	TaxRate       *decimal.Decimal
	Status        *entities.QuoteStatus
	ValidUntil    *time.Time
	Notes         *string
}

type QuoteFilter struct {
	ClientID string
	Status   entities.QuoteStatus
}

// IQuoteUseCase exposes quote operations.
//
// Status changes are a flat menu action: any status can follow any other.
// ConvertToJob turns an accepted quote into scheduled work.

type IQuoteUseCase interface {
	List(ctx context.Context, f QuoteFilter) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, in QuoteInput) (entities.Quote, error)
	Update(ctx context.Context, id string, p QuotePatch) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	ConvertToJob(ctx context.Context, id string) (entities.Job, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	jobRepo interfaces.IJobRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, jobRepo interfaces.IJobRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, jobRepo: jobRepo}
}

func (u *QuoteUseCase) List(ctx context.Context, f QuoteFilter) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientID := strings.TrimSpace(f.ClientID)
	return filter(quotes, func(q entities.Quote) bool {
		return (clientID == "" || q.ClientID == clientID) && (f.Status == "" || q.Status == f.Status)
	}), nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" || strings.TrimSpace(in.Title) == "" {
		return entities.Quote{}, ErrInvalidQuote
	}
	if !validLineItems(in.LineItems) || !validDiscount(in.Discount) || in.TaxRate.IsNegative() {
		return entities.Quote{}, ErrInvalidQuote
	}
	status := in.Status
	if status == "" {
		status = entities.QuoteStatusDraft
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	ts := now()
	q := entities.Quote{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		QuoteNumber: strings.TrimSpace(in.QuoteNumber),
		Title:       strings.TrimSpace(in.Title),
		LineItems:   toLineItems(in.LineItems),
		Discount:    in.Discount,
		TaxRate:     in.TaxRate,
		Status:      status,
		ValidUntil:  in.ValidUntil,
		Notes:       in.Notes,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if q.QuoteNumber == "" {
		q.QuoteNumber = documentNumber("Q", q.ID)
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = ts.Add(defaultQuoteValidity)
	}
	priceQuote(&q)

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	logging.For("quote", "create").WithFields(logrus.Fields{
		"quote_id":  created.ID,
		"client_id": created.ClientID,
		"total":     created.Total.StringFixed(2),
	}).Info("quote created")
	return created, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, p QuotePatch) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if p.ClientID != nil {
		if strings.TrimSpace(*p.ClientID) == "" {
			return entities.Quote{}, ErrInvalidQuote
		}
		q.ClientID = strings.TrimSpace(*p.ClientID)
	}
	if p.QuoteNumber != nil {
		q.QuoteNumber = strings.TrimSpace(*p.QuoteNumber)
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return entities.Quote{}, ErrInvalidQuote
		}
		q.Title = strings.TrimSpace(*p.Title)
	}
	if p.LineItems != nil {
		if !validLineItems(*p.LineItems) {
			return entities.Quote{}, ErrInvalidQuote
		}
		q.LineItems = toLineItems(*p.LineItems)
	}
	if p.ClearDiscount {
		q.Discount = nil
	} else if p.Discount != nil {
		if !validDiscount(p.Discount) {
			return entities.Quote{}, ErrInvalidQuote
		}
		q.Discount = p.Discount
	}
	if p.TaxRate != nil {
		if p.TaxRate.IsNegative() {
			return entities.Quote{}, ErrInvalidQuote
		}
		q.TaxRate = *p.TaxRate
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return entities.Quote{}, ErrInvalidQuoteStatus
		}
		q.Status = *p.Status
	}
	if p.ValidUntil != nil {
		q.ValidUntil = *p.ValidUntil
	}
	if p.Notes != nil {
		q.Notes = *p.Notes
	}

	priceQuote(&q)
	return u.save(ctx, q)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	return u.Update(ctx, id, QuotePatch{Status: &status})
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrQuoteNotFound
	}
	return nil
}

// ConvertToJob creates a scheduled job carrying the quote's client, title and
// line items, then marks the quote approved.
func (u *QuoteUseCase) ConvertToJob(ctx context.Context, id string) (entities.Job, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	ts := now()
	lines := copyLineItems(q.LineItems)
	job := entities.Job{
		ID:        uuid.NewString(),
		ClientID:  q.ClientID,
		QuoteID:   q.ID,
		Title:     q.Title,
		LineItems: lines,
		Total:     finance.Subtotal(lines),
		Status:    entities.JobStatusScheduled,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	job.JobNumber = documentNumber("J", job.ID)

	created, err := u.jobRepo.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}

	q.Status = entities.QuoteStatusApproved
	if _, err := u.save(ctx, q); err != nil {
		logging.LogError("quote", "convert-to-job", "approve quote after job creation", map[string]string{"quote_id": q.ID, "job_id": created.ID}, err)
		return entities.Job{}, err
	}

	logging.For("quote", "convert-to-job").WithFields(logrus.Fields{
		"quote_id": q.ID,
		"job_id":   created.ID,
	}).Info("quote converted to job")
	return created, nil
}

func (u *QuoteUseCase) save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.UpdatedAt = now()
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func priceQuote(q *entities.Quote) {
	t := finance.Calculate(q.LineItems, q.Discount, q.TaxRate)
	q.LineItems = t.LineItems
	q.Subtotal = t.Subtotal
	q.DiscountAmount = t.DiscountAmount
	q.TaxAmount = t.TaxAmount
	q.Total = t.Total
}

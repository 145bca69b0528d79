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
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidJobID       = errors.New("invalid job id")
	ErrInvalidJob         = errors.New("invalid job")
	ErrInvalidJobStatus   = errors.New("invalid job status")
	ErrInvalidJobSchedule = errors.New("scheduled end must not be before scheduled start")
)

type JobInput struct {
	ClientID       string
	QuoteID        string
	JobNumber      string
	Title          string
	Description    string
	LineItems      []LineItemInput
	Status         entities.JobStatus
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	AssignedTo     string
	Address        *entities.Address
}

// JobPatch merges every non-nil field. Unschedule clears both schedule
// fields and wins over ScheduledStart/ScheduledEnd.
type JobPatch struct {
	ClientID       *string
	JobNumber      *string
	Title          *string
	Description    *string
	LineItems      *[]LineItemInput
	Status         *entities.JobStatus
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	Unschedule     bool
	AssignedTo     *string
	Address        *entities.Address
}

type JobFilter struct {
	ClientID string
	Status   entities.JobStatus
}

type IJobUseCase interface {
	List(ctx context.Context, f JobFilter) ([]entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Create(ctx context.Context, in JobInput) (entities.Job, error)
	Update(ctx context.Context, id string, p JobPatch) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) List(ctx context.Context, f JobFilter) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientID := strings.TrimSpace(f.ClientID)
	return filter(jobs, func(j entities.Job) bool {
		return (clientID == "" || j.ClientID == clientID) && (f.Status == "" || j.Status == f.Status)
	}), nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) Create(ctx context.Context, in JobInput) (entities.Job, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" || strings.TrimSpace(in.Title) == "" || !validLineItems(in.LineItems) {
		return entities.Job{}, ErrInvalidJob
	}
	status := in.Status
	if status == "" {
		status = entities.JobStatusScheduled
	}
	if !status.Valid() {
		return entities.Job{}, ErrInvalidJobStatus
	}
	if !validSchedule(in.ScheduledStart, in.ScheduledEnd) {
		return entities.Job{}, ErrInvalidJobSchedule
	}

	ts := now()
	j := entities.Job{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		QuoteID:        strings.TrimSpace(in.QuoteID),
		JobNumber:      strings.TrimSpace(in.JobNumber),
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		LineItems:      toLineItems(in.LineItems),
		Status:         status,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		AssignedTo:     strings.TrimSpace(in.AssignedTo),
		Address:        in.Address,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if j.JobNumber == "" {
		j.JobNumber = documentNumber("J", j.ID)
	}
	priceJob(&j)

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	logging.For("job", "create").WithField("job_id", created.ID).Info("job created")
	return created, nil
}

func (u *JobUseCase) Update(ctx context.Context, id string, p JobPatch) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if p.ClientID != nil {
		if strings.TrimSpace(*p.ClientID) == "" {
			return entities.Job{}, ErrInvalidJob
		}
		j.ClientID = strings.TrimSpace(*p.ClientID)
	}
	if p.JobNumber != nil {
		j.JobNumber = strings.TrimSpace(*p.JobNumber)
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return entities.Job{}, ErrInvalidJob
		}
		j.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.LineItems != nil {
		if !validLineItems(*p.LineItems) {
			return entities.Job{}, ErrInvalidJob
		}
		j.LineItems = toLineItems(*p.LineItems)
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return entities.Job{}, ErrInvalidJobStatus
		}
		j.Status = *p.Status
	}
	if p.Unschedule {
		j.ScheduledStart, j.ScheduledEnd = nil, nil
	} else {
		if p.ScheduledStart != nil {
			j.ScheduledStart = p.ScheduledStart
		}
		if p.ScheduledEnd != nil {
			j.ScheduledEnd = p.ScheduledEnd
		}
	}
	if !validSchedule(j.ScheduledStart, j.ScheduledEnd) {
		return entities.Job{}, ErrInvalidJobSchedule
	}
	if p.AssignedTo != nil {
		j.AssignedTo = strings.TrimSpace(*p.AssignedTo)
	}
	if p.Address != nil {
		j.Address = p.Address
	}

	priceJob(&j)
	j.UpdatedAt = now()

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	if !status.Valid() {
		return entities.Job{}, ErrInvalidJobStatus
	}
	return u.Update(ctx, id, JobPatch{Status: &status})
}

func (u *JobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrJobNotFound
	}
	return nil
}

func priceJob(j *entities.Job) {
	t := finance.Calculate(j.LineItems, nil, decimal.Zero)
	j.LineItems = t.LineItems
	j.Total = t.Subtotal
}

func validSchedule(start, end *time.Time) bool {
	if end == nil {
		return true
	}
	if start == nil {
		return false
	}
	return !end.Before(*start)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskloop/internal/domain/entities"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound        = errors.New("request not found")
	ErrInvalidRequestID       = errors.New("invalid request id")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrInvalidRequestStatus   = errors.New("invalid request status")
	ErrInvalidRequestPriority = errors.New("invalid request priority")
)

type RequestInput struct {
	ClientID       string
	Title          string
	Description    string
	Status         entities.RequestStatus
	Priority       entities.RequestPriority
	RequestedDate  time.Time
	AssessmentDate *time.Time
}

// RequestPatch merges every non-nil field. ClearAssessment drops a booked
// assessment.
type RequestPatch struct {
	ClientID        *string
	Title           *string
	Description     *string
	Status          *entities.RequestStatus
	Priority        *entities.RequestPriority
	RequestedDate   *time.Time
	AssessmentDate  *time.Time
	ClearAssessment bool
}

type RequestFilter struct {
	ClientID string
	Status   entities.RequestStatus
}

type IRequestUseCase interface {
	List(ctx context.Context, f RequestFilter) ([]entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	Create(ctx context.Context, in RequestInput) (entities.Request, error)
	Update(ctx context.Context, id string, p RequestPatch) (entities.Request, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.Request, error)
	Delete(ctx context.Context, id string) error
}

type RequestUseCase struct {
	repo interfaces.IRequestRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo}
}

func (u *RequestUseCase) List(ctx context.Context, f RequestFilter) ([]entities.Request, error) {
	requests, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientID := strings.TrimSpace(f.ClientID)
	return filter(requests, func(r entities.Request) bool {
		return (clientID == "" || r.ClientID == clientID) && (f.Status == "" || r.Status == f.Status)
	}), nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Request{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) Create(ctx context.Context, in RequestInput) (entities.Request, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" || strings.TrimSpace(in.Title) == "" {
		return entities.Request{}, ErrInvalidRequest
	}
	status := in.Status
	if status == "" {
		status = entities.RequestStatusNew
	}
	if !status.Valid() {
		return entities.Request{}, ErrInvalidRequestStatus
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.RequestPriorityMedium
	}
	if !validPriority(priority) {
		return entities.Request{}, ErrInvalidRequestPriority
	}

	ts := now()
	r := entities.Request{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Status:         status,
		Priority:       priority,
		RequestedDate:  in.RequestedDate,
		AssessmentDate: in.AssessmentDate,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if r.RequestedDate.IsZero() {
		r.RequestedDate = ts
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Request{}, err
	}
	logging.For("request", "create").WithField("request_id", created.ID).Info("request created")
	return created, nil
}

func (u *RequestUseCase) Update(ctx context.Context, id string, p RequestPatch) (entities.Request, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Request{}, err
	}

	if p.ClientID != nil {
		if strings.TrimSpace(*p.ClientID) == "" {
			return entities.Request{}, ErrInvalidRequest
		}
		r.ClientID = strings.TrimSpace(*p.ClientID)
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return entities.Request{}, ErrInvalidRequest
		}
		r.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return entities.Request{}, ErrInvalidRequestStatus
		}
		r.Status = *p.Status
	}
	if p.Priority != nil {
		if !validPriority(*p.Priority) {
			return entities.Request{}, ErrInvalidRequestPriority
		}
		r.Priority = *p.Priority
	}
	if p.RequestedDate != nil {
		r.RequestedDate = *p.RequestedDate
	}
	if p.ClearAssessment {
		r.AssessmentDate = nil
	} else if p.AssessmentDate != nil {
		r.AssessmentDate = p.AssessmentDate
	}
	r.UpdatedAt = now()

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return updated, nil
}

func (u *RequestUseCase) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.Request, error) {
	if !status.Valid() {
		return entities.Request{}, ErrInvalidRequestStatus
	}
	return u.Update(ctx, id, RequestPatch{Status: &status})
}

func (u *RequestUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequestID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrRequestNotFound
	}
	return nil
}

func validPriority(p entities.RequestPriority) bool {
	switch p {
	case entities.RequestPriorityLow, entities.RequestPriorityMedium, entities.RequestPriorityHigh:
		return true
	}
	return false
}

package request

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"
)

// CreateWorkRequest is the body for POST /requests.
type CreateWorkRequest struct {
	ClientID       string `json:"client_id" binding:"required"`
	Title          string `json:"title" binding:"required,min=3"`
	Description    string `json:"description"`
	Status         string `json:"status" binding:"omitempty,oneof=new assessment_complete overdue unscheduled"`
	Priority       string `json:"priority" binding:"omitempty,oneof=low medium high"`
	RequestedDate  string `json:"requested_date" binding:"omitempty,date"`
	AssessmentDate string `json:"assessment_date" binding:"omitempty,date"`
}

func (r CreateWorkRequest) ToInput() (usecase.RequestInput, error) {
	requested, err := parseDateOrZero(r.RequestedDate)
	if err != nil {
		return usecase.RequestInput{}, err
	}
	assessment, err := parseDatePtr(&r.AssessmentDate)
	if err != nil {
		return usecase.RequestInput{}, err
	}
	return usecase.RequestInput{
		ClientID:       r.ClientID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         entities.RequestStatus(r.Status),
		Priority:       entities.RequestPriority(r.Priority),
		RequestedDate:  requested,
		AssessmentDate: assessment,
	}, nil
}

type UpdateWorkRequest struct {
	ClientID        *string `json:"client_id" binding:"omitempty,min=1"`
	Title           *string `json:"title" binding:"omitempty,min=3"`
	Description     *string `json:"description"`
	Status          *string `json:"status" binding:"omitempty,oneof=new assessment_complete overdue unscheduled"`
	Priority        *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	RequestedDate   *string `json:"requested_date" binding:"omitempty,date"`
	AssessmentDate  *string `json:"assessment_date" binding:"omitempty,date"`
	ClearAssessment bool    `json:"clear_assessment"`
}

func (r UpdateWorkRequest) ToPatch() (usecase.RequestPatch, error) {
	requested, err := parseDatePtr(r.RequestedDate)
	if err != nil {
		return usecase.RequestPatch{}, err
	}
	assessment, err := parseDatePtr(r.AssessmentDate)
	if err != nil {
		return usecase.RequestPatch{}, err
	}
	p := usecase.RequestPatch{
		ClientID:        r.ClientID,
		Title:           r.Title,
		Description:     r.Description,
		RequestedDate:   requested,
		AssessmentDate:  assessment,
		ClearAssessment: r.ClearAssessment,
	}
	if r.Status != nil {
		s := entities.RequestStatus(*r.Status)
		p.Status = &s
	}
	if r.Priority != nil {
		pr := entities.RequestPriority(*r.Priority)
		p.Priority = &pr
	}
	return p, nil
}

type RequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new assessment_complete overdue unscheduled"`
}

package request

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"
)

type CreateJobRequest struct {
	ClientID       string            `json:"client_id" binding:"required"`
	QuoteID        string            `json:"quote_id"`
	JobNumber      string            `json:"job_number"`
	Title          string            `json:"title" binding:"required,min=3"`
	Description    string            `json:"description"`
	LineItems      []LineItemRequest `json:"line_items" binding:"dive"`
	Status         string            `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	ScheduledStart string            `json:"scheduled_start" binding:"omitempty,date"`
	ScheduledEnd   string            `json:"scheduled_end" binding:"omitempty,date"`
	AssignedTo     string            `json:"assigned_to"`
	Address        *AddressRequest   `json:"address"`
}

func (r CreateJobRequest) ToInput() (usecase.JobInput, error) {
	start, err := parseDatePtr(&r.ScheduledStart)
	if err != nil {
		return usecase.JobInput{}, err
	}
	end, err := parseDatePtr(&r.ScheduledEnd)
	if err != nil {
		return usecase.JobInput{}, err
	}
	return usecase.JobInput{
		ClientID:       r.ClientID,
		QuoteID:        r.QuoteID,
		JobNumber:      r.JobNumber,
		Title:          r.Title,
		Description:    r.Description,
		LineItems:      lineItemInputs(r.LineItems),
		Status:         entities.JobStatus(r.Status),
		ScheduledStart: start,
		ScheduledEnd:   end,
		AssignedTo:     r.AssignedTo,
		Address:        r.Address.ToAddress(),
	}, nil
}

type UpdateJobRequest struct {
	ClientID       *string            `json:"client_id" binding:"omitempty,min=1"`
	JobNumber      *string            `json:"job_number"`
	Title          *string            `json:"title" binding:"omitempty,min=3"`
	Description    *string            `json:"description"`
	LineItems      *[]LineItemRequest `json:"line_items" binding:"omitempty,dive"`
	Status         *string            `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	ScheduledStart *string            `json:"scheduled_start" binding:"omitempty,date"`
	ScheduledEnd   *string            `json:"scheduled_end" binding:"omitempty,date"`
	Unschedule     bool               `json:"unschedule"`
	AssignedTo     *string            `json:"assigned_to"`
	Address        *AddressRequest    `json:"address"`
}

func (r UpdateJobRequest) ToPatch() (usecase.JobPatch, error) {
	start, err := parseDatePtr(r.ScheduledStart)
	if err != nil {
		return usecase.JobPatch{}, err
	}
	end, err := parseDatePtr(r.ScheduledEnd)
	if err != nil {
		return usecase.JobPatch{}, err
	}
	var status *entities.JobStatus
	if r.Status != nil {
		s := entities.JobStatus(*r.Status)
		status = &s
	}
	return usecase.JobPatch{
		ClientID:       r.ClientID,
		JobNumber:      r.JobNumber,
		Title:          r.Title,
		Description:    r.Description,
		LineItems:      lineItemInputsPtr(r.LineItems),
		Status:         status,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Unschedule:     r.Unschedule,
		AssignedTo:     r.AssignedTo,
		Address:        r.Address.ToAddress(),
	}, nil
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled in_progress completed cancelled"`
}

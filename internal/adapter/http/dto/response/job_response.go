package response

import (
	"time"

	"taskloop/internal/domain/entities"
)

type JobResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"client_id"`
	QuoteID        string             `json:"quote_id,omitempty"`
	JobNumber      string             `json:"job_number"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	LineItems      []LineItemResponse `json:"line_items"`
	Total          float64            `json:"total"`
	Status         string             `json:"status"`
	ScheduledStart *time.Time         `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time         `json:"scheduled_end,omitempty"`
	AssignedTo     string             `json:"assigned_to,omitempty"`
	Address        *entities.Address  `json:"address,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		ClientID:       j.ClientID,
		QuoteID:        j.QuoteID,
		JobNumber:      j.JobNumber,
		Title:          j.Title,
		Description:    j.Description,
		LineItems:      fromLineItems(j.LineItems),
		Total:          money(j.Total),
		Status:         string(j.Status),
		ScheduledStart: j.ScheduledStart,
		ScheduledEnd:   j.ScheduledEnd,
		AssignedTo:     j.AssignedTo,
		Address:        j.Address,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

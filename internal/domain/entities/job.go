package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is scheduled work for a client. Total is the sum of the line totals.
type Job struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	QuoteID        string          `json:"quote_id,omitempty"`
	JobNumber      string          `json:"job_number"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	LineItems      []LineItem      `json:"line_items"`
	Total          decimal.Decimal `json:"total"`
	Status         JobStatus       `json:"status"`
	ScheduledStart *time.Time      `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time      `json:"scheduled_end,omitempty"`
	AssignedTo     string          `json:"assigned_to,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (j Job) EntityID() string   { return j.ID }
func (j Job) Created() time.Time { return j.CreatedAt }

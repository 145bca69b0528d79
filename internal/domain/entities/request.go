package entities

import "time"

type RequestStatus string

const (
	RequestStatusNew                RequestStatus = "new"
	RequestStatusAssessmentComplete RequestStatus = "assessment_complete"
	RequestStatusOverdue            RequestStatus = "overdue"
	RequestStatusUnscheduled        RequestStatus = "unscheduled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusNew, RequestStatusAssessmentComplete, RequestStatusOverdue, RequestStatusUnscheduled:
		return true
	}
	return false
}

type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "low"
	RequestPriorityMedium RequestPriority = "medium"
	RequestPriorityHigh   RequestPriority = "high"
)

// Request is a freeform work request raised by (or for) a client.
type Request struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Status         RequestStatus   `json:"status"`
	Priority       RequestPriority `json:"priority,omitempty"`
	RequestedDate  time.Time       `json:"requested_date"`
	AssessmentDate *time.Time      `json:"assessment_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (r Request) EntityID() string   { return r.ID }
func (r Request) Created() time.Time { return r.CreatedAt }

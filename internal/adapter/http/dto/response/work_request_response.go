package response

import (
	"time"

	"taskloop/internal/domain/entities"
)

type WorkRequestResponse struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"client_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority,omitempty"`
	RequestedDate  time.Time  `json:"requested_date"`
	AssessmentDate *time.Time `json:"assessment_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromRequest(r entities.Request) WorkRequestResponse {
	return WorkRequestResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         string(r.Status),
		Priority:       string(r.Priority),
		RequestedDate:  r.RequestedDate,
		AssessmentDate: r.AssessmentDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Package calendar projects jobs and requests into calendar events and lays
// them out in month, week and day views.
//
// Layout is a linear scan of the event list per cell; no interval index is
// kept.
package calendar

import (
	"sort"
	"time"

	"taskloop/internal/domain/entities"
)

type EventType string

const (
	EventTypeJob     EventType = "job"
	EventTypeRequest EventType = "request"
)

// Event is a read-only projection of a job or request. It is never stored.
type Event struct {
	ID       string     `json:"id"`
	SourceID string     `json:"source_id"`
	Title    string     `json:"title"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"`
	Type     EventType  `json:"type"`
	Status   string     `json:"status"`
	Color    string     `json:"color"`
	ClientID string     `json:"client_id"`
}

var jobColors = map[entities.JobStatus]string{
	entities.JobStatusScheduled:  "#3b82f6",
	entities.JobStatusInProgress: "#f59e0b",
	entities.JobStatusCompleted:  "#10b981",
	entities.JobStatusCancelled:  "#9ca3af",
}

var requestColors = map[entities.RequestStatus]string{
	entities.RequestStatusNew:                "#8b5cf6",
	entities.RequestStatusAssessmentComplete: "#14b8a6",
	entities.RequestStatusOverdue:            "#ef4444",
	entities.RequestStatusUnscheduled:        "#6b7280",
}

const defaultColor = "#64748b"

// FromJob projects a job. Jobs without a scheduled start are not on the
// calendar.
func FromJob(j entities.Job) (Event, bool) {
	if j.ScheduledStart == nil {
		return Event{}, false
	}
	color, ok := jobColors[j.Status]
	if !ok {
		color = defaultColor
	}
	return Event{
		ID:       "job-" + j.ID,
		SourceID: j.ID,
		Title:    j.Title,
		Start:    *j.ScheduledStart,
		End:      j.ScheduledEnd,
		Type:     EventTypeJob,
		Status:   string(j.Status),
		Color:    color,
		ClientID: j.ClientID,
	}, true
}

// FromRequest projects a request on its assessment date, or on the requested
// date when no assessment is booked.
func FromRequest(r entities.Request) (Event, bool) {
	start := r.RequestedDate
	if r.AssessmentDate != nil {
		start = *r.AssessmentDate
	}
	if start.IsZero() {
		return Event{}, false
	}
	color, ok := requestColors[r.Status]
	if !ok {
		color = defaultColor
	}
	return Event{
		ID:       "request-" + r.ID,
		SourceID: r.ID,
		Title:    r.Title,
		Start:    start,
		Type:     EventTypeRequest,
		Status:   string(r.Status),
		Color:    color,
		ClientID: r.ClientID,
	}, true
}

// Project builds the event list for the given jobs and requests, ordered by
// start time.
func Project(jobs []entities.Job, requests []entities.Request) []Event {
	events := make([]Event, 0, len(jobs)+len(requests))
	for _, j := range jobs {
		if ev, ok := FromJob(j); ok {
			events = append(events, ev)
		}
	}
	for _, r := range requests {
		if ev, ok := FromRequest(r); ok {
			events = append(events, ev)
		}
	}
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Start.Before(events[b].Start)
	})
	return events
}

package usecase

import (
	"context"
	"errors"
	"time"

	"taskloop/internal/domain/calendar"
	"taskloop/internal/usecase/interfaces"
)

var ErrInvalidCalendarRange = errors.New("invalid calendar range")

// maxEventRange bounds Events queries.
const maxEventRange = 366 * 24 * time.Hour

type ICalendarUseCase interface {
	Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error)
	Month(ctx context.Context, year int, month time.Month) (calendar.MonthView, error)
	Week(ctx context.Context, date time.Time) (calendar.WeekView, error)
	Day(ctx context.Context, date time.Time) (calendar.DayView, error)
	Location() *time.Location
}

// CalendarUseCase re-projects jobs and requests on every call; nothing is
// cached between calls.
type CalendarUseCase struct {
	jobRepo     interfaces.IJobRepository
	requestRepo interfaces.IRequestRepository
	layout      *calendar.Layout
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(jobRepo interfaces.IJobRepository, requestRepo interfaces.IRequestRepository, layout *calendar.Layout) *CalendarUseCase {
	if layout == nil {
		layout = calendar.NewLayout(time.UTC)
	}
	return &CalendarUseCase{jobRepo: jobRepo, requestRepo: requestRepo, layout: layout}
}

func (u *CalendarUseCase) Location() *time.Location {
	return u.layout.Location()
}

func (u *CalendarUseCase) Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	if from.IsZero() || to.IsZero() || !to.After(from) || to.Sub(from) > maxEventRange {
		return nil, ErrInvalidCalendarRange
	}
	events, err := u.events(ctx)
	if err != nil {
		return nil, err
	}
	return u.layout.EventsBetween(events, from, to), nil
}

func (u *CalendarUseCase) Month(ctx context.Context, year int, month time.Month) (calendar.MonthView, error) {
	if year < 1 || month < time.January || month > time.December {
		return calendar.MonthView{}, ErrInvalidCalendarRange
	}
	events, err := u.events(ctx)
	if err != nil {
		return calendar.MonthView{}, err
	}
	return u.layout.Month(events, year, month), nil
}

func (u *CalendarUseCase) Week(ctx context.Context, date time.Time) (calendar.WeekView, error) {
	if date.IsZero() {
		return calendar.WeekView{}, ErrInvalidCalendarRange
	}
	events, err := u.events(ctx)
	if err != nil {
		return calendar.WeekView{}, err
	}
	return u.layout.Week(events, date), nil
}

func (u *CalendarUseCase) Day(ctx context.Context, date time.Time) (calendar.DayView, error) {
	if date.IsZero() {
		return calendar.DayView{}, ErrInvalidCalendarRange
	}
	events, err := u.events(ctx)
	if err != nil {
		return calendar.DayView{}, err
	}
	return u.layout.Day(events, date), nil
}

func (u *CalendarUseCase) events(ctx context.Context) ([]calendar.Event, error) {
	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := u.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.Project(jobs, requests), nil
}

package calendar

import "time"

// GridCells is the number of day cells in a month view: six weeks.
const GridCells = 42

// DayCell is one cell of the month grid.
type DayCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	IsToday bool      `json:"is_today"`
	Events  []Event   `json:"events"`
}

// HourSlot holds the events starting within one hour of a day.
type HourSlot struct {
	Hour   int     `json:"hour"`
	Events []Event `json:"events"`
}

type DayView struct {
	Date  time.Time  `json:"date"`
	Slots []HourSlot `json:"slots"`
}

type MonthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Cells []DayCell `json:"cells"`
}

type WeekView struct {
	Start time.Time `json:"start"`
	Days  []DayView `json:"days"`
}

// Layout lays events out in a fixed location. Day and hour matching is done
// on wall-clock time in that location.
type Layout struct {
	loc *time.Location
	now func() time.Time
}

func NewLayout(loc *time.Location) *Layout {
	if loc == nil {
		loc = time.UTC
	}
	return &Layout{loc: loc, now: time.Now}
}

func (l *Layout) Location() *time.Location {
	return l.loc
}

// StartOfDay truncates t to midnight in the layout location.
func (l *Layout) StartOfDay(t time.Time) time.Time {
	t = t.In(l.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, l.loc)
}

func (l *Layout) SameDay(a, b time.Time) bool {
	a, b = a.In(l.loc), b.In(l.loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid returns the 42 days shown for a month: it starts on the Sunday on
// or before the 1st and pads with days of the adjacent months.
func (l *Layout) MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, l.loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, GridCells)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekDays returns the Sunday-start week containing t.
func (l *Layout) WeekDays(t time.Time) []time.Time {
	day := l.StartOfDay(t)
	start := day.AddDate(0, 0, -int(day.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// EventsOnDay filters events starting on the same calendar day as day.
func (l *Layout) EventsOnDay(events []Event, day time.Time) []Event {
	out := []Event{}
	for _, ev := range events {
		if l.SameDay(ev.Start, day) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsAtHour filters events starting on day within the given hour.
func (l *Layout) EventsAtHour(events []Event, day time.Time, hour int) []Event {
	out := []Event{}
	for _, ev := range events {
		if l.SameDay(ev.Start, day) && ev.Start.In(l.loc).Hour() == hour {
			out = append(out, ev)
		}
	}
	return out
}

// EventsBetween filters events with from <= start < to.
func (l *Layout) EventsBetween(events []Event, from, to time.Time) []Event {
	out := []Event{}
	for _, ev := range events {
		if !ev.Start.Before(from) && ev.Start.Before(to) {
			out = append(out, ev)
		}
	}
	return out
}

func (l *Layout) Month(events []Event, year int, month time.Month) MonthView {
	today := l.now()
	grid := l.MonthGrid(year, month)

	cells := make([]DayCell, len(grid))
	for i, day := range grid {
		cells[i] = DayCell{
			Date:    day,
			InMonth: day.Month() == month,
			IsToday: l.SameDay(day, today),
			Events:  l.EventsOnDay(events, day),
		}
	}
	return MonthView{Year: year, Month: int(month), Cells: cells}
}

func (l *Layout) Day(events []Event, t time.Time) DayView {
	day := l.StartOfDay(t)
	slots := make([]HourSlot, 24)
	for h := range slots {
		slots[h] = HourSlot{Hour: h, Events: l.EventsAtHour(events, day, h)}
	}
	return DayView{Date: day, Slots: slots}
}

func (l *Layout) Week(events []Event, t time.Time) WeekView {
	days := l.WeekDays(t)
	view := WeekView{Start: days[0], Days: make([]DayView, len(days))}
	for i, day := range days {
		view.Days[i] = l.Day(events, day)
	}
	return view
}

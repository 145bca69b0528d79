package handlers

import (
	"errors"
	"net/http"
	"time"

	request "taskloop/internal/adapter/http/dto/request"
	response "taskloop/internal/adapter/http/dto/response"
	"taskloop/internal/domain/calendar"
	"taskloop/internal/usecase"
	"taskloop/pkg"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the calendar views. Date-only parameters are read
// in the calendar's location.
type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
	now     func() time.Time
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc, now: time.Now}
}

// ListEvents godoc
// @Summary  Events starting in [from, to)
// @Tags     calendar
// @Produce  json
// @Param    from  query  string  true  "YYYY-MM-DD or RFC3339"
// @Param    to    query  string  true  "YYYY-MM-DD or RFC3339"
// @Success  200  {object}  response.ListResponse[calendar.Event]
// @Failure  400  {object}  pkg.HTTPError
// @Router   /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	var q request.CalendarRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	loc := h.usecase.Location()
	from, err := request.ParseDateIn(q.From, loc)
	if err != nil {
		writeError(c, pkg.NewValidationError(map[string]string{"from": err.Error()}))
		return
	}
	to, err := request.ParseDateIn(q.To, loc)
	if err != nil {
		writeError(c, pkg.NewValidationError(map[string]string{"to": err.Error()}))
		return
	}

	events, err := h.usecase.Events(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.ListResponse[calendar.Event]{Items: events, Count: len(events)})
}

// GetMonth godoc
// @Summary  Month grid
// @Tags     calendar
// @Produce  json
// @Param    year   query  int  true  "Year"
// @Param    month  query  int  true  "Month, 1-12"
// @Success  200  {object}  calendar.MonthView
// @Failure  400  {object}  pkg.HTTPError
// @Router   /calendar/month [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	var q request.CalendarMonthQuery
	if !bindQuery(c, &q) {
		return
	}

	view, err := h.usecase.Month(c.Request.Context(), q.Year, time.Month(q.Month))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetWeek godoc
// @Summary  Week containing date (Sunday start)
// @Tags     calendar
// @Produce  json
// @Param    date  query  string  false  "Defaults to today"
// @Success  200  {object}  calendar.WeekView
// @Failure  400  {object}  pkg.HTTPError
// @Router   /calendar/week [get]
func (h *CalendarHandler) GetWeek(c *gin.Context) {
	date, ok := h.bindDate(c)
	if !ok {
		return
	}

	view, err := h.usecase.Week(c.Request.Context(), date)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetDay godoc
// @Summary  Hour slots of one day
// @Tags     calendar
// @Produce  json
// @Param    date  query  string  false  "Defaults to today"
// @Success  200  {object}  calendar.DayView
// @Failure  400  {object}  pkg.HTTPError
// @Router   /calendar/day [get]
func (h *CalendarHandler) GetDay(c *gin.Context) {
	date, ok := h.bindDate(c)
	if !ok {
		return
	}

	view, err := h.usecase.Day(c.Request.Context(), date)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CalendarHandler) bindDate(c *gin.Context) (time.Time, bool) {
	var q request.CalendarDateQuery
	if !bindQuery(c, &q) {
		return time.Time{}, false
	}
	loc := h.usecase.Location()
	if q.Date == "" {
		return h.now().In(loc), true
	}
	date, err := request.ParseDateIn(q.Date, loc)
	if err != nil {
		writeError(c, pkg.NewValidationError(map[string]string{"date": err.Error()}))
		return time.Time{}, false
	}
	return date, true
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCalendarRange):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "Invalid calendar range", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}

package routes

import (
	"taskloop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCalendar = "/calendar"

func addCalendarRoutes(rg *gin.RouterGroup, h *handlers.CalendarHandler) {
	cal := rg.Group(PathCalendar)
	{
		cal.GET("/events", h.ListEvents)
		cal.GET("/month", h.GetMonth)
		cal.GET("/week", h.GetWeek)
		cal.GET("/day", h.GetDay)
	}
}

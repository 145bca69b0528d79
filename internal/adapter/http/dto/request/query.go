package request

type ClientListQuery struct {
	Query string `form:"q" json:"q"`
}

// DocumentListQuery filters quote, job, request and invoice listings.
type DocumentListQuery struct {
	ClientID string `form:"client_id" json:"client_id"`
	JobID    string `form:"job_id" json:"job_id"`
	Status   string `form:"status" json:"status"`
}

type CalendarRangeQuery struct {
	From string `form:"from" json:"from" binding:"required,date"`
	To   string `form:"to" json:"to" binding:"required,date"`
}

type CalendarMonthQuery struct {
	Year  int `form:"year" json:"year" binding:"required,gte=1,lte=9999"`
	Month int `form:"month" json:"month" binding:"required,gte=1,lte=12"`
}

// CalendarDateQuery selects a week or day; an empty date means today.
type CalendarDateQuery struct {
	Date string `form:"date" json:"date" binding:"omitempty,date"`
}

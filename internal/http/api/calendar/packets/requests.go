package packets

// QUERY FOR /api/calendar/:month
type MonthQuery struct {
	Year     int    `form:"year" binding:"omitempty,gte=1900,lte=2200"`
	Selected string `form:"selected" binding:"omitempty,datetime=2006-01-02"`
}

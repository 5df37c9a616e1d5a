// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DateRange enumerates every date from start to end inclusive, formatted as
// YYYY-MM-DD. Returns nil if end precedes start.
func DateRange(start, end time.Time) []string {
	days := DaysBetween(start, end)
	if days < 0 {
		return nil
	}
	dates := make([]string, 0, days+1)
	cur := BeginningOfDay(start)
	for i := 0; i <= days; i++ {
		dates = append(dates, cur.Format("2006-01-02"))
		cur = cur.AddDate(0, 0, 1)
	}
	return dates
}

package domain

import "time"

const dayKeyLayout = "2006-01-02"

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format(dayKeyLayout) == b.In(loc).Format(dayKeyLayout)
}

// StreakDays counts consecutive calendar days (in now's location) that have
// at least one timestamp. Counting starts today, or yesterday when today has
// no activity yet.
func StreakDays(times []time.Time, now time.Time) int {
	loc := now.Location()
	days := make(map[string]struct{}, len(times))
	for _, t := range times {
		days[t.In(loc).Format(dayKeyLayout)] = struct{}{}
	}

	y, m, d := now.Date()
	cursor := time.Date(y, m, d, 12, 0, 0, 0, loc)
	if _, ok := days[cursor.Format(dayKeyLayout)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[cursor.Format(dayKeyLayout)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

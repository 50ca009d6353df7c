package availability

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"banquet/models"
)

// Eligible reports whether a staff member may be assigned to an event on the
// given date ("YYYY-MM-DD") at the given clock time ("HH:MM"). Rules are
// checked in strict order, stopping at the first failure:
//
//  1. blackout date — overrides everything else
//  2. weekly day-of-week flag — an unset schedule means every day is open
//  3. per-day hour window, inclusive at both bounds
//
// The function is total: fields it cannot interpret are treated as
// unrestricted rather than failing.
func Eligible(s models.StaffMember, date, clock string) bool {
	if slices.Contains(s.UnavailableDates, date) {
		return false
	}

	if s.Weekly == nil {
		return true
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	rule := s.Weekly.Days[int(day.Weekday())]
	if !rule.Available {
		return false
	}
	if rule.Window == nil {
		return true
	}

	t := toMinutes(clock)
	start := toMinutes(rule.Window.Start)
	end := toMinutes(rule.Window.End)
	if t < 0 || start < 0 || end < 0 {
		return true
	}
	return start <= t && t <= end
}

// toMinutes converts "HH:MM" to minutes since midnight, -1 when malformed.
func toMinutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return -1
	}
	hours, err1 := strconv.Atoi(h)
	mins, err2 := strconv.Atoi(m)
	if err1 != nil || err2 != nil || hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return -1
	}
	return hours*60 + mins
}

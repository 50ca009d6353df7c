package availability

import (
	"testing"

	"banquet/models"
)

// 2025-06-07 is a Saturday.
const saturday = "2025-06-07"

func TestBlackoutOverridesWeeklyPattern(t *testing.T) {
	s := models.StaffMember{
		Weekly:           models.OpenWeek(),
		UnavailableDates: []string{saturday},
	}
	if Eligible(s, saturday, "18:00") {
		t.Error("blackout date must win even when the weekly pattern allows the day")
	}
	if !Eligible(s, "2025-06-08", "18:00") {
		t.Error("other dates remain eligible")
	}
}

func TestUnsetScheduleMeansAlwaysAvailable(t *testing.T) {
	s := models.StaffMember{}
	if !Eligible(s, saturday, "03:30") {
		t.Error("staff without an explicit weekly pattern are available every day")
	}
}

func TestWeeklyDayGate(t *testing.T) {
	w := models.OpenWeek()
	w.Days[6].Available = false // Saturday off
	s := models.StaffMember{Weekly: w}

	if Eligible(s, saturday, "18:00") {
		t.Error("day flagged unavailable must be ineligible")
	}
	if !Eligible(s, "2025-06-06", "18:00") {
		t.Error("Friday remains eligible")
	}
}

func TestHourWindowInclusiveBounds(t *testing.T) {
	w := models.OpenWeek()
	w.Days[6].Window = &models.TimeWindow{Start: "10:00", End: "22:00"}
	s := models.StaffMember{Weekly: w}

	cases := []struct {
		clock string
		want  bool
	}{
		{"10:00", true},
		{"22:00", true},
		{"09:59", false},
		{"22:01", false},
		{"16:30", true},
	}
	for _, c := range cases {
		if got := Eligible(s, saturday, c.clock); got != c.want {
			t.Errorf("Eligible(%s) = %v, want %v", c.clock, got, c.want)
		}
	}
}

func TestDayWithoutWindowIsUnrestricted(t *testing.T) {
	w := models.OpenWeek()
	w.Days[0].Window = &models.TimeWindow{Start: "10:00", End: "14:00"}
	s := models.StaffMember{Weekly: w}

	// Saturday has no window configured.
	if !Eligible(s, saturday, "23:45") {
		t.Error("a day without a configured window accepts any time")
	}
}

func TestMalformedInputStaysTotal(t *testing.T) {
	w := models.OpenWeek()
	w.Days[6].Window = &models.TimeWindow{Start: "10:00", End: "22:00"}
	s := models.StaffMember{Weekly: w}

	if !Eligible(s, "not-a-date", "18:00") {
		t.Error("unparseable date skips weekly checks instead of failing")
	}
	if !Eligible(s, saturday, "six pm") {
		t.Error("unparseable time is treated as unrestricted")
	}
}

package models

// TimeWindow bounds are "HH:MM", inclusive at both ends.
type TimeWindow struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// DayRule is the availability record for one day of the week. A nil Window
// means the whole day is open; Available false blocks the day outright.
type DayRule struct {
	Available bool        `json:"available" bson:"available"`
	Window    *TimeWindow `json:"window,omitempty" bson:"window,omitempty"`
}

// WeeklySchedule is indexed by time.Weekday (0=Sunday).
type WeeklySchedule struct {
	Days [7]DayRule `json:"days" bson:"days"`
}

// OpenWeek returns a schedule with every day available and unrestricted,
// the starting point for staff who have not set a pattern yet.
func OpenWeek() *WeeklySchedule {
	var w WeeklySchedule
	for i := range w.Days {
		w.Days[i].Available = true
	}
	return &w
}

type StaffMember struct {
	StaffID string `json:"staffId" bson:"staffId"`
	Name    string `json:"name" bson:"name"`
	Role    string `json:"role" bson:"role"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`

	// Weekly nil means available every day at any time.
	Weekly *WeeklySchedule `json:"weekly,omitempty" bson:"weekly,omitempty"`

	// Specific all-day blackout dates (YYYY-MM-DD). Overrides Weekly.
	UnavailableDates []string `json:"unavailableDates,omitempty" bson:"unavailableDates,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
}

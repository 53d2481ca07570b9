package models

// Weekday mirrors the backend's uppercase day-of-week enum.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Weekdays lists the seven days in fixed Monday→Sunday order. Every weekly
// schedule carries exactly these days, in this order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeSlot is a contiguous working interval within one day. Bounds are "HH:mm"
// clock strings; zero-padded 24h form sorts correctly as plain strings.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule is one day of a weekly working schedule. A non-working day must
// have no slots; a working day needs at least one.
type DaySchedule struct {
	DayOfWeek Weekday    `json:"dayOfWeek"`
	IsWorking bool       `json:"isWorking"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// WeeklySchedule is the in-memory working schedule for one staff member.
type WeeklySchedule struct {
	OwnerEmail string        `json:"ownerEmail"`
	Days       []DaySchedule `json:"days"`
}

// ScheduleRecord is the backend wire form: one record per working slot.
// Non-working days are represented by absence, not an explicit flag.
type ScheduleRecord struct {
	DayOfWeek Weekday   `json:"dayOfWeek"`
	StartTime TimeValue `json:"startTime"`
	EndTime   TimeValue `json:"endTime"`
}

// SaveScheduleRequest is the create-schedule payload. Schedule may be a full
// week or just the changed days (day-level patch).
type SaveScheduleRequest struct {
	Email    string           `json:"email"`
	Schedule []ScheduleRecord `json:"schedule"`
}

// ValidationResult reports the first schedule violation found, if any.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// ScheduleDiff describes how an edited schedule differs from its snapshot.
type ScheduleDiff struct {
	HasChanges    bool      `json:"hasChanges"`
	ChangedDays   []Weekday `json:"changedDays"`
	IsNewSchedule bool      `json:"isNewSchedule"`
}

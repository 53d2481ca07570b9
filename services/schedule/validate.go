package schedule

import (
	"fmt"
	"regexp"

	"clinicdesk/models"
)

// clockPattern accepts 24h clock strings, optionally with seconds and an
// unpadded hour ("9:30" and "09:30:00" both pass).
var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// maxSlotsPerDay caps slots per day. The dashboards cap this in the editor;
// the engine enforces it as well so direct API callers cannot bypass it.
const maxSlotsPerDay = 3

// Validate checks a weekly schedule and reports the first violation found,
// scanning days Monday→Sunday and slots in start order within a day.
func Validate(s models.WeeklySchedule) models.ValidationResult {
	idx := dayIndex(s)
	for _, wd := range models.Weekdays {
		day, ok := idx[wd]
		if !ok {
			continue
		}
		if res := validateDay(day); !res.IsValid {
			return res
		}
	}
	return models.ValidationResult{IsValid: true}
}

func validateDay(day models.DaySchedule) models.ValidationResult {
	if day.IsWorking && len(day.TimeSlots) == 0 {
		return invalid("%s is marked as working but has no time slots", day.DayOfWeek)
	}
	if !day.IsWorking && len(day.TimeSlots) > 0 {
		return invalid("%s is marked as not working but still has time slots", day.DayOfWeek)
	}
	if !day.IsWorking || len(day.TimeSlots) == 0 {
		return models.ValidationResult{IsValid: true}
	}
	if len(day.TimeSlots) > maxSlotsPerDay {
		return invalid("%s has more than %d time slots", day.DayOfWeek, maxSlotsPerDay)
	}

	slots := sortedSlots(day.TimeSlots)
	for i, slot := range slots {
		if !clockPattern.MatchString(slot.Start) {
			return invalid("%s has an invalid start time %q", day.DayOfWeek, slot.Start)
		}
		if !clockPattern.MatchString(slot.End) {
			return invalid("%s has an invalid end time %q", day.DayOfWeek, slot.End)
		}
		if slot.Start >= slot.End {
			return invalid("%s has a slot whose start %s is not before its end %s", day.DayOfWeek, slot.Start, slot.End)
		}
		// Touching slots count as overlapping: an interval ending at 10:00
		// and one starting at 10:00 are rejected together.
		if i+1 < len(slots) && slot.End >= slots[i+1].Start {
			return invalid("%s has overlapping time slots (%s-%s and %s-%s)",
				day.DayOfWeek, slot.Start, slot.End, slots[i+1].Start, slots[i+1].End)
		}
	}
	return models.ValidationResult{IsValid: true}
}

func invalid(format string, args ...interface{}) models.ValidationResult {
	return models.ValidationResult{IsValid: false, Error: fmt.Sprintf(format, args...)}
}

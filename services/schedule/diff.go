package schedule

import (
	"clinicdesk/models"
)

// Diff compares an edited schedule against the last saved snapshot. With no
// snapshot the whole schedule is new and the caller must send everything.
// A day counts as changed when its working flag differs, its slot count
// differs, or any (start,end) pair differs after sorting both sides by start.
func Diff(original *models.WeeklySchedule, current models.WeeklySchedule) models.ScheduleDiff {
	if original == nil {
		return models.ScheduleDiff{HasChanges: true, ChangedDays: []models.Weekday{}, IsNewSchedule: true}
	}

	origIdx := dayIndex(*original)
	curIdx := dayIndex(current)
	changed := make([]models.Weekday, 0)
	for _, wd := range models.Weekdays {
		origDay, ok := origIdx[wd]
		if !ok {
			// No baseline for this day; treat it as changed.
			changed = append(changed, wd)
			continue
		}
		curDay, ok := curIdx[wd]
		if !ok {
			curDay = models.DaySchedule{DayOfWeek: wd, IsWorking: false}
		}
		if dayChanged(origDay, curDay) {
			changed = append(changed, wd)
		}
	}

	return models.ScheduleDiff{HasChanges: len(changed) > 0, ChangedDays: changed}
}

func dayChanged(orig, cur models.DaySchedule) bool {
	if orig.IsWorking != cur.IsWorking {
		return true
	}
	if len(orig.TimeSlots) != len(cur.TimeSlots) {
		return true
	}
	origSlots := sortedSlots(orig.TimeSlots)
	curSlots := sortedSlots(cur.TimeSlots)
	for i := range origSlots {
		if origSlots[i].Start != curSlots[i].Start || origSlots[i].End != curSlots[i].End {
			return true
		}
	}
	return false
}

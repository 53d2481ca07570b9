package schedule

import (
	"clinicdesk/models"
)

// ToBackendFormat flattens a weekly schedule into the backend's wire form:
// one record per slot on working days. Non-working days emit nothing; that
// absence is how "not working" travels on the wire.
func ToBackendFormat(s models.WeeklySchedule) []models.ScheduleRecord {
	records := make([]models.ScheduleRecord, 0)
	idx := dayIndex(s)
	for _, wd := range models.Weekdays {
		day, ok := idx[wd]
		if !ok || !day.IsWorking {
			continue
		}
		for _, slot := range sortedSlots(day.TimeSlots) {
			records = append(records, models.ScheduleRecord{
				DayOfWeek: wd,
				StartTime: models.ClockValue(slot.Start),
				EndTime:   models.ClockValue(slot.End),
			})
		}
	}
	return records
}

// FromBackendFormat groups wire records into a weekly schedule. All seven
// days are always present, Monday→Sunday, regardless of input order; a day
// is working iff at least one record mentions it. Slot times are normalized
// and sorted by start.
func FromBackendFormat(records []models.ScheduleRecord, ownerEmail string) models.WeeklySchedule {
	grouped := make(map[models.Weekday][]models.TimeSlot, len(models.Weekdays))
	for _, rec := range records {
		grouped[rec.DayOfWeek] = append(grouped[rec.DayOfWeek], models.TimeSlot{
			Start: NormalizeTime(rec.StartTime),
			End:   NormalizeTime(rec.EndTime),
		})
	}

	days := make([]models.DaySchedule, 0, len(models.Weekdays))
	for _, wd := range models.Weekdays {
		slots := grouped[wd]
		if slots == nil {
			slots = []models.TimeSlot{}
		}
		days = append(days, models.DaySchedule{
			DayOfWeek: wd,
			IsWorking: len(slots) > 0,
			TimeSlots: sortedSlots(slots),
		})
	}
	return models.WeeklySchedule{OwnerEmail: ownerEmail, Days: days}
}

// Package schedule owns the weekly working-schedule engine: normalization,
// validation, diffing against the last saved snapshot, and the wire codec
// for the clinic backend's flat slot records.
package schedule

import (
	"fmt"
	"sort"
	"strings"

	"clinicdesk/config"
	"clinicdesk/models"
)

// NormalizeTime reduces any accepted time encoding to "HH:mm". The fallback
// fails closed: an unrecognized shape normalizes to "", which validation
// rejects, instead of being stringified best-effort.
func NormalizeTime(v models.TimeValue) string {
	if v.Invalid {
		return ""
	}
	if v.Struct {
		return fmt.Sprintf("%02d:%02d", v.Hour, v.Minute)
	}
	parts := strings.Split(v.Str, ":")
	if len(parts) < 2 {
		return ""
	}
	return pad(parts[0]) + ":" + pad(parts[1])
}

func pad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// DefaultSlot is the slot added when a day is first toggled to working.
func DefaultSlot() models.TimeSlot {
	start, end := config.AppConfig.DefaultSlotStart, config.AppConfig.DefaultSlotEnd
	if start == "" || end == "" {
		start, end = "09:00", "17:00"
	}
	return models.TimeSlot{Start: start, End: end}
}

// DefaultWeek builds an all-days-off schedule, the editing baseline when no
// schedule exists yet.
func DefaultWeek(ownerEmail string) models.WeeklySchedule {
	days := make([]models.DaySchedule, 0, len(models.Weekdays))
	for _, wd := range models.Weekdays {
		days = append(days, models.DaySchedule{DayOfWeek: wd, IsWorking: false, TimeSlots: []models.TimeSlot{}})
	}
	return models.WeeklySchedule{OwnerEmail: ownerEmail, Days: days}
}

// EnableDay marks a day as working, seeding the default slot when it has none.
func EnableDay(s *models.WeeklySchedule, day models.Weekday) {
	for i := range s.Days {
		if s.Days[i].DayOfWeek != day {
			continue
		}
		s.Days[i].IsWorking = true
		if len(s.Days[i].TimeSlots) == 0 {
			s.Days[i].TimeSlots = []models.TimeSlot{DefaultSlot()}
		}
		return
	}
}

// dayIndex maps a schedule's days by weekday for fixed-order scans.
func dayIndex(s models.WeeklySchedule) map[models.Weekday]models.DaySchedule {
	idx := make(map[models.Weekday]models.DaySchedule, len(s.Days))
	for _, d := range s.Days {
		idx[d.DayOfWeek] = d
	}
	return idx
}

// sortedSlots returns a copy of slots ordered by start time. Zero-padded
// 24h strings sort correctly lexicographically.
func sortedSlots(slots []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Copy deep-copies a schedule so snapshots never alias live edit state.
func Copy(s models.WeeklySchedule) models.WeeklySchedule {
	days := make([]models.DaySchedule, len(s.Days))
	for i, d := range s.Days {
		slots := make([]models.TimeSlot, len(d.TimeSlots))
		copy(slots, d.TimeSlots)
		days[i] = models.DaySchedule{DayOfWeek: d.DayOfWeek, IsWorking: d.IsWorking, TimeSlots: slots}
	}
	return models.WeeklySchedule{OwnerEmail: s.OwnerEmail, Days: days}
}

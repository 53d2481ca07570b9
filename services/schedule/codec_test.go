package schedule

import (
	"encoding/json"
	"testing"

	"clinicdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(day models.Weekday, start, end string) models.ScheduleRecord {
	return models.ScheduleRecord{
		DayOfWeek: day,
		StartTime: models.ClockValue(start),
		EndTime:   models.ClockValue(end),
	}
}

func TestToBackendFormatSkipsNonWorkingDays(t *testing.T) {
	week := DefaultWeek("jane@clinic.com")
	EnableDay(&week, models.Monday)

	records := ToBackendFormat(week)
	require.Len(t, records, 1)
	assert.Equal(t, models.Monday, records[0].DayOfWeek)
	assert.Equal(t, "09:00", NormalizeTime(records[0].StartTime))
	assert.Equal(t, "17:00", NormalizeTime(records[0].EndTime))
}

func TestFromBackendFormatAlwaysEmitsSevenDays(t *testing.T) {
	week := FromBackendFormat([]models.ScheduleRecord{
		record(models.Monday, "09:00", "17:00"),
	}, "jane@clinic.com")

	require.Len(t, week.Days, 7)
	assert.Equal(t, "jane@clinic.com", week.OwnerEmail)
	assert.True(t, week.Days[0].IsWorking)
	assert.Equal(t, []models.TimeSlot{{Start: "09:00", End: "17:00"}}, week.Days[0].TimeSlots)
	for _, day := range week.Days[1:] {
		assert.False(t, day.IsWorking, "%s should be off", day.DayOfWeek)
		assert.Empty(t, day.TimeSlots)
	}
}

func TestFromBackendFormatIgnoresInputOrder(t *testing.T) {
	week := FromBackendFormat([]models.ScheduleRecord{
		record(models.Friday, "13:00", "17:00"),
		record(models.Monday, "9:00", "12:00"),
		record(models.Friday, "08:00", "12:00"),
	}, "jane@clinic.com")

	assert.Equal(t, models.Monday, week.Days[0].DayOfWeek)
	assert.Equal(t, []models.TimeSlot{{Start: "09:00", End: "12:00"}}, week.Days[0].TimeSlots)
	// Friday's slots come back sorted by start, not input order.
	assert.Equal(t, []models.TimeSlot{
		{Start: "08:00", End: "12:00"},
		{Start: "13:00", End: "17:00"},
	}, week.Days[4].TimeSlots)
}

func TestFromBackendFormatNormalizesStructTimes(t *testing.T) {
	payload := `[{"dayOfWeek":"MONDAY","startTime":{"hour":9,"minute":0},"endTime":"17:00:00"}]`
	var records []models.ScheduleRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &records))

	week := FromBackendFormat(records, "jane@clinic.com")
	assert.Equal(t, []models.TimeSlot{{Start: "09:00", End: "17:00"}}, week.Days[0].TimeSlots)
}

func TestRoundTrip(t *testing.T) {
	// A schedule whose working days all have slots survives the wire
	// round-trip exactly, with days and slots in canonical order.
	week := DefaultWeek("jane@clinic.com")
	week.Days[0] = models.DaySchedule{DayOfWeek: models.Monday, IsWorking: true, TimeSlots: []models.TimeSlot{
		{Start: "13:00", End: "17:00"},
		{Start: "09:00", End: "12:00"},
	}}
	week.Days[5] = models.DaySchedule{DayOfWeek: models.Saturday, IsWorking: true, TimeSlots: []models.TimeSlot{
		{Start: "10:00", End: "14:00"},
	}}

	got := FromBackendFormat(ToBackendFormat(week), week.OwnerEmail)

	want := Copy(week)
	want.Days[0].TimeSlots = sortedSlots(want.Days[0].TimeSlots)
	assert.Equal(t, want, got)
}

package schedule

import (
	"encoding/json"
	"testing"

	"clinicdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimeStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "09:00", "09:00"},
		{"unpadded hour", "9:00", "09:00"},
		{"with seconds", "09:30:00", "09:30"},
		{"unpadded with seconds", "9:5:00", "09:05"},
		{"not a clock at all", "morning", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeTime(models.ClockValue(tc.in)))
		})
	}
}

func TestNormalizeTimeStructShapes(t *testing.T) {
	for _, raw := range []string{
		`{"hour": 9, "minute": 5}`,
		`{"hours": 9, "minutes": 5}`,
		`{"h": 9, "m": 5}`,
	} {
		var v models.TimeValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v))
		assert.Equal(t, "09:05", NormalizeTime(v), "shape %s", raw)
	}
}

func TestNormalizeTimeFailsClosed(t *testing.T) {
	// An unrecognized shape must normalize to "", not to a stringified blob.
	var v models.TimeValue
	require.NoError(t, json.Unmarshal([]byte(`{"when": "soon"}`), &v))
	assert.Equal(t, "", NormalizeTime(v))

	require.NoError(t, json.Unmarshal([]byte(`42`), &v))
	assert.Equal(t, "", NormalizeTime(v))
}

func TestDefaultWeekAllDaysOff(t *testing.T) {
	week := DefaultWeek("jane@clinic.com")
	require.Len(t, week.Days, 7)
	for i, wd := range models.Weekdays {
		assert.Equal(t, wd, week.Days[i].DayOfWeek)
		assert.False(t, week.Days[i].IsWorking)
		assert.Empty(t, week.Days[i].TimeSlots)
	}
}

func TestEnableDaySeedsDefaultSlot(t *testing.T) {
	week := DefaultWeek("jane@clinic.com")
	EnableDay(&week, models.Tuesday)

	day := week.Days[1]
	assert.True(t, day.IsWorking)
	require.Len(t, day.TimeSlots, 1)
	assert.Equal(t, models.TimeSlot{Start: "09:00", End: "17:00"}, day.TimeSlots[0])

	// Enabling a day that already has slots must not touch them.
	EnableDay(&week, models.Tuesday)
	assert.Len(t, week.Days[1].TimeSlots, 1)
}

func TestCopyDoesNotAlias(t *testing.T) {
	week := DefaultWeek("jane@clinic.com")
	EnableDay(&week, models.Monday)

	snap := Copy(week)
	week.Days[0].TimeSlots[0].Start = "10:00"
	week.Days[0].IsWorking = false

	assert.True(t, snap.Days[0].IsWorking)
	assert.Equal(t, "09:00", snap.Days[0].TimeSlots[0].Start)
}

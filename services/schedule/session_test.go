package schedule

import (
	"context"
	"testing"

	"clinicdesk/backend"
	"clinicdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleAPI struct {
	records []models.ScheduleRecord
	getErr  error
	onGet   func()

	saved   []models.SaveScheduleRequest
	saveErr error
}

func (f *fakeScheduleAPI) GetSchedule(ctx context.Context, auth, email string) ([]models.ScheduleRecord, error) {
	if f.onGet != nil {
		f.onGet()
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records, nil
}

func (f *fakeScheduleAPI) SaveSchedule(ctx context.Context, auth string, req models.SaveScheduleRequest) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, req)
	return nil
}

type memSnapshots struct {
	m map[string]models.WeeklySchedule
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{m: make(map[string]models.WeeklySchedule)}
}

func (s *memSnapshots) Get(ctx context.Context, email string) (*models.WeeklySchedule, error) {
	snap, ok := s.m[email]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *memSnapshots) Set(ctx context.Context, email string, snap models.WeeklySchedule) error {
	s.m[email] = snap
	return nil
}

func (s *memSnapshots) Clear(ctx context.Context, email string) error {
	delete(s.m, email)
	return nil
}

type capturedAudit struct {
	entries []models.AuditEntry
}

func (a *capturedAudit) Record(ctx context.Context, entry models.AuditEntry) {
	a.entries = append(a.entries, entry)
}

func newSessionService(api *fakeScheduleAPI) (*DefaultService, *memSnapshots, *capturedAudit) {
	snaps := newMemSnapshots()
	audit := &capturedAudit{}
	return &DefaultService{API: api, Snapshots: snaps, Audit: audit}, snaps, audit
}

const subject = "jane@clinic.com"

func TestLoadEditSaveScenario(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{records: []models.ScheduleRecord{
		record(models.Monday, "09:00", "17:00"),
	}}
	svc, snaps, audit := newSessionService(api)

	// Load: Monday working, everything else off, snapshot captured.
	loaded, err := svc.Load(ctx, "token", subject)
	require.NoError(t, err)
	assert.True(t, loaded.Exists)
	assert.True(t, loaded.Schedule.Days[0].IsWorking)
	assert.Equal(t, []models.TimeSlot{{Start: "09:00", End: "17:00"}}, loaded.Schedule.Days[0].TimeSlots)
	for _, day := range loaded.Schedule.Days[1:] {
		assert.False(t, day.IsWorking)
	}
	require.Contains(t, snaps.m, subject)

	assert.True(t, svc.Validate(loaded.Schedule).IsValid)

	// Toggle Tuesday on; the default slot comes with it.
	edited := Copy(loaded.Schedule)
	EnableDay(&edited, models.Tuesday)
	assert.True(t, svc.Validate(edited).IsValid)

	// Save: only the changed day travels (day-level patch).
	result, err := svc.Save(ctx, "token", "admin@clinic.com", edited)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.False(t, result.IsNewSchedule)
	assert.Equal(t, []models.Weekday{models.Tuesday}, result.ChangedDays)

	require.Len(t, api.saved, 1)
	assert.Equal(t, subject, api.saved[0].Email)
	require.Len(t, api.saved[0].Schedule, 1)
	assert.Equal(t, models.Tuesday, api.saved[0].Schedule[0].DayOfWeek)

	// The full wire form still carries both working days.
	full := ToBackendFormat(edited)
	require.Len(t, full, 2)
	assert.Equal(t, models.Monday, full[0].DayOfWeek)
	assert.Equal(t, models.Tuesday, full[1].DayOfWeek)

	// Snapshot advanced: an unmodified schedule has nothing left to save.
	again, err := svc.Save(ctx, "token", "admin@clinic.com", edited)
	require.NoError(t, err)
	assert.True(t, again.NoChanges)
	assert.False(t, again.Saved)

	// One audit entry for the one real save.
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "schedule.save", audit.entries[0].Action)
	assert.Equal(t, subject, audit.entries[0].Subject)
	assert.Equal(t, []string{"TUESDAY"}, audit.entries[0].Details)
}

func TestLoadMissingScheduleYieldsBlankWeek(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{getErr: &backend.Error{Kind: backend.KindNotFound, Status: 404, Message: "no schedule"}}
	svc, snaps, _ := newSessionService(api)

	loaded, err := svc.Load(ctx, "token", subject)
	require.NoError(t, err)
	assert.False(t, loaded.Exists)
	require.Len(t, loaded.Schedule.Days, 7)
	for _, day := range loaded.Schedule.Days {
		assert.False(t, day.IsWorking)
	}
	assert.NotContains(t, snaps.m, subject)
}

func TestSaveWithoutSnapshotSendsEverything(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{}
	svc, snaps, _ := newSessionService(api)

	week := DefaultWeek(subject)
	EnableDay(&week, models.Monday)
	EnableDay(&week, models.Friday)

	result, err := svc.Save(ctx, "token", "admin@clinic.com", week)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.True(t, result.IsNewSchedule)

	require.Len(t, api.saved, 1)
	assert.Len(t, api.saved[0].Schedule, 2)
	assert.Contains(t, snaps.m, subject)
}

func TestSaveRejectsInvalidScheduleLocally(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{}
	svc, _, audit := newSessionService(api)

	week := DefaultWeek(subject)
	week.Days[0].IsWorking = true // working Monday with no slots

	result, err := svc.Save(ctx, "token", "admin@clinic.com", week)
	require.NoError(t, err)
	assert.False(t, result.Saved)
	assert.False(t, result.Validation.IsValid)
	assert.Contains(t, result.Validation.Error, "MONDAY")

	// The invalid schedule never reached the backend, and nothing was audited.
	assert.Empty(t, api.saved)
	assert.Empty(t, audit.entries)
}

func TestSaveFailurePreservesSnapshot(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{records: []models.ScheduleRecord{
		record(models.Monday, "09:00", "17:00"),
	}}
	svc, snaps, _ := newSessionService(api)

	_, err := svc.Load(ctx, "token", subject)
	require.NoError(t, err)
	before := snaps.m[subject]

	api.saveErr = &backend.Error{Kind: backend.KindPermissionDenied, Status: 403, Message: "forbidden"}
	edited := Copy(before)
	EnableDay(&edited, models.Tuesday)

	_, err = svc.Save(ctx, "token", "admin@clinic.com", edited)
	require.Error(t, err)
	assert.True(t, backend.IsKind(err, backend.KindPermissionDenied))
	assert.Equal(t, before, snaps.m[subject], "failed save must not advance the baseline")
}

func TestResetDropsSnapshot(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{records: []models.ScheduleRecord{
		record(models.Monday, "09:00", "17:00"),
	}}
	svc, snaps, _ := newSessionService(api)

	_, err := svc.Load(ctx, "token", subject)
	require.NoError(t, err)
	require.Contains(t, snaps.m, subject)

	require.NoError(t, svc.Reset(ctx, subject))
	assert.NotContains(t, snaps.m, subject)
}

func TestSupersededLoadDoesNotCommitSnapshot(t *testing.T) {
	ctx := context.Background()
	api := &fakeScheduleAPI{records: []models.ScheduleRecord{
		record(models.Monday, "09:00", "17:00"),
	}}
	svc, snaps, _ := newSessionService(api)

	// The subject is switched away while the fetch is in flight; the stale
	// response must not become the diff baseline.
	api.onGet = func() {
		require.NoError(t, svc.Reset(ctx, subject))
	}

	loaded, err := svc.Load(ctx, "token", subject)
	require.NoError(t, err)
	assert.True(t, loaded.Exists)
	assert.NotContains(t, snaps.m, subject)
}

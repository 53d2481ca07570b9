package schedule

import (
	"context"
	"sync"
	"time"

	"clinicdesk/backend"
	"clinicdesk/models"
	"clinicdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditSink receives desk activity entries. Implementations must never fail
// the calling request; a nil sink disables auditing.
type AuditSink interface {
	Record(ctx context.Context, entry models.AuditEntry)
}

// LoadResult is a fetched schedule plus whether the backend had one. When it
// did not, Schedule is a blank week the UI can edit from scratch.
type LoadResult struct {
	Schedule models.WeeklySchedule `json:"schedule"`
	Exists   bool                  `json:"exists"`
}

// SaveResult reports the outcome of a save attempt. A failed validation is a
// normal outcome, not an error: the caller corrects the input and retries.
type SaveResult struct {
	Saved         bool                    `json:"saved"`
	Validation    models.ValidationResult `json:"validation"`
	NoChanges     bool                    `json:"noChanges,omitempty"`
	ChangedDays   []models.Weekday        `json:"changedDays,omitempty"`
	IsNewSchedule bool                    `json:"isNewSchedule,omitempty"`
}

// Service manages schedule edit sessions: loading with snapshot capture,
// validation, day-level-patch saves, and explicit reset on subject switch.
type Service interface {
	Load(ctx context.Context, auth, email string) (*LoadResult, error)
	Validate(s models.WeeklySchedule) models.ValidationResult
	Save(ctx context.Context, auth, actor string, s models.WeeklySchedule) (*SaveResult, error)
	Reset(ctx context.Context, email string) error
}

// DefaultService is the concrete Service.
type DefaultService struct {
	API       backend.ScheduleAPI
	Snapshots SnapshotStore
	Audit     AuditSink

	mu  sync.Mutex
	seq map[string]uint64
}

// begin bumps the per-subject sequence and returns the ticket for this call.
func (s *DefaultService) begin(email string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == nil {
		s.seq = make(map[string]uint64)
	}
	s.seq[email]++
	return s.seq[email]
}

// current reports whether ticket is still the latest operation for email.
// A fetch that lost the race against a newer load or reset must not commit
// its snapshot; last request wins.
func (s *DefaultService) current(email string, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[email] == ticket
}

// Load fetches the stored schedule and commits it as the diff baseline.
// "No schedule yet" is an expected state: the caller gets a blank editable
// week and the snapshot stays empty so the next save sends everything.
func (s *DefaultService) Load(ctx context.Context, auth, email string) (*LoadResult, error) {
	ticket := s.begin(email)

	records, err := s.API.GetSchedule(ctx, auth, email)
	if err != nil {
		if backend.IsKind(err, backend.KindNotFound) {
			if s.current(email, ticket) {
				if cerr := s.Snapshots.Clear(ctx, email); cerr != nil {
					utils.GetLogger().Warn("Failed to clear schedule snapshot", zap.String("email", email), zap.Error(cerr))
				}
			}
			return &LoadResult{Schedule: DefaultWeek(email), Exists: false}, nil
		}
		return nil, err
	}

	sched := FromBackendFormat(records, email)
	if s.current(email, ticket) {
		if serr := s.Snapshots.Set(ctx, email, Copy(sched)); serr != nil {
			utils.GetLogger().Warn("Failed to store schedule snapshot", zap.String("email", email), zap.Error(serr))
		}
	}
	return &LoadResult{Schedule: sched, Exists: true}, nil
}

// Validate checks an edited schedule without touching the network.
func (s *DefaultService) Validate(sched models.WeeklySchedule) models.ValidationResult {
	return Validate(sched)
}

// Save validates, diffs against the snapshot, sends only the changed days
// (or the full week for a brand-new schedule) and commits the new baseline.
func (s *DefaultService) Save(ctx context.Context, auth, actor string, sched models.WeeklySchedule) (*SaveResult, error) {
	if res := Validate(sched); !res.IsValid {
		return &SaveResult{Validation: res}, nil
	}
	valid := models.ValidationResult{IsValid: true}

	snap, err := s.Snapshots.Get(ctx, sched.OwnerEmail)
	if err != nil {
		// A broken snapshot degrades to a full save, never a failed one.
		utils.GetLogger().Warn("Failed to read schedule snapshot", zap.String("email", sched.OwnerEmail), zap.Error(err))
		snap = nil
	}

	diff := Diff(snap, sched)
	if !diff.HasChanges {
		return &SaveResult{Validation: valid, NoChanges: true}, nil
	}

	var records []models.ScheduleRecord
	if diff.IsNewSchedule {
		records = ToBackendFormat(sched)
	} else {
		records = changedDayRecords(sched, diff.ChangedDays)
	}

	req := models.SaveScheduleRequest{Email: sched.OwnerEmail, Schedule: records}
	if err := s.API.SaveSchedule(ctx, auth, req); err != nil {
		return nil, err
	}

	ticket := s.begin(sched.OwnerEmail)
	if s.current(sched.OwnerEmail, ticket) {
		if serr := s.Snapshots.Set(ctx, sched.OwnerEmail, Copy(sched)); serr != nil {
			utils.GetLogger().Warn("Failed to store schedule snapshot", zap.String("email", sched.OwnerEmail), zap.Error(serr))
		}
	}

	if s.Audit != nil {
		s.Audit.Record(ctx, models.AuditEntry{
			ID:        uuid.New().String(),
			Actor:     actor,
			Action:    "schedule.save",
			Subject:   sched.OwnerEmail,
			Details:   weekdayNames(diff.ChangedDays),
			CreatedAt: time.Now().UTC(),
		})
	}

	return &SaveResult{
		Saved:         true,
		Validation:    valid,
		ChangedDays:   diff.ChangedDays,
		IsNewSchedule: diff.IsNewSchedule,
	}, nil
}

// Reset drops the snapshot when the editor switches to another staff member,
// so a stale baseline from the previous subject can never leak into a diff.
func (s *DefaultService) Reset(ctx context.Context, email string) error {
	s.begin(email)
	return s.Snapshots.Clear(ctx, email)
}

// changedDayRecords emits wire records for the changed days only.
func changedDayRecords(sched models.WeeklySchedule, days []models.Weekday) []models.ScheduleRecord {
	wanted := make(map[models.Weekday]bool, len(days))
	for _, wd := range days {
		wanted[wd] = true
	}
	records := make([]models.ScheduleRecord, 0)
	for _, rec := range ToBackendFormat(sched) {
		if wanted[rec.DayOfWeek] {
			records = append(records, rec)
		}
	}
	return records
}

func weekdayNames(days []models.Weekday) []string {
	names := make([]string, len(days))
	for i, wd := range days {
		names[i] = string(wd)
	}
	return names
}

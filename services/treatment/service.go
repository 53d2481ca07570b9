package treatment

import (
	"context"
	"time"

	"clinicdesk/backend"
	"clinicdesk/models"

	"github.com/google/uuid"
)

// AuditSink receives desk activity entries. A nil sink disables auditing.
type AuditSink interface {
	Record(ctx context.Context, entry models.AuditEntry)
}

// Service is the treatment slice of the desk: reconciled search plus the
// two mutations the dashboards perform.
type Service interface {
	Search(ctx context.Context, auth, actor string, filters models.TreatmentFilters) ([]models.ReconciledTreatment, error)
	Update(ctx context.Context, auth, actor, id string, upd models.TreatmentUpdate) (*models.ReconciledTreatment, error)
	ReplacePrescriptions(ctx context.Context, auth, actor, id string, prescriptions []models.Prescription) ([]models.Prescription, error)
}

// DefaultService is the concrete Service. Cache is optional.
type DefaultService struct {
	API   backend.TreatmentAPI
	Cache *CoalesceCache
	Audit AuditSink
}

// Search translates the filters, fetches (through the coalescing cache),
// reconciles payment fields, applies the client-only paid filter and
// highlights the searched keywords. The paid filter runs strictly after the
// fetch; it must never become a request parameter.
func (s *DefaultService) Search(ctx context.Context, auth, actor string, filters models.TreatmentFilters) ([]models.ReconciledTreatment, error) {
	req := FiltersToRequest(filters)

	raw, hit := []models.Treatment(nil), false
	if s.Cache != nil {
		raw, hit = s.Cache.Get(ctx, actor, req)
	}
	if !hit {
		fetched, err := s.API.FilterTreatments(ctx, auth, req)
		if err != nil {
			return nil, err
		}
		raw = fetched
		if s.Cache != nil {
			s.Cache.Set(ctx, actor, req, raw)
		}
	}

	reconciled := make([]models.ReconciledTreatment, 0, len(raw))
	for _, t := range raw {
		reconciled = append(reconciled, Reconcile(t))
	}
	reconciled = FilterByPaymentStatus(reconciled, filters.Paid)

	for i := range reconciled {
		if reconciled[i].VisitNotes != "" {
			reconciled[i].VisitNotes = Highlight(reconciled[i].VisitNotes, []string{filters.VisitNotesKeyword})
		}
		for j := range reconciled[i].Prescriptions {
			reconciled[i].Prescriptions[j].MedicationName =
				Highlight(reconciled[i].Prescriptions[j].MedicationName, []string{filters.PrescriptionKeyword})
		}
	}
	return reconciled, nil
}

// Update patches a treatment upstream and returns the reconciled result.
func (s *DefaultService) Update(ctx context.Context, auth, actor, id string, upd models.TreatmentUpdate) (*models.ReconciledTreatment, error) {
	updated, err := s.API.UpdateTreatment(ctx, auth, id, upd)
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, "treatment.update", id, updatedFields(upd))
	reconciled := Reconcile(*updated)
	return &reconciled, nil
}

// ReplacePrescriptions swaps the whole prescription list and returns what
// the backend saved.
func (s *DefaultService) ReplacePrescriptions(ctx context.Context, auth, actor, id string, prescriptions []models.Prescription) ([]models.Prescription, error) {
	saved, err := s.API.ReplacePrescriptions(ctx, auth, id, prescriptions)
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, "treatment.prescriptions.replace", id, nil)
	return saved, nil
}

func (s *DefaultService) record(ctx context.Context, actor, action, subject string, details []string) {
	if s.Audit == nil {
		return
	}
	s.Audit.Record(ctx, models.AuditEntry{
		ID:        uuid.New().String(),
		Actor:     actor,
		Action:    action,
		Subject:   subject,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})
}

func updatedFields(upd models.TreatmentUpdate) []string {
	var fields []string
	if upd.Notes != nil {
		fields = append(fields, "notes")
	}
	if upd.AmountPaid != nil {
		fields = append(fields, "amountPaid")
	}
	if upd.InstallmentPeriodInMonths != nil {
		fields = append(fields, "installmentPeriodInMonths")
	}
	return fields
}

package treatment

import (
	"strings"

	"clinicdesk/models"
)

// FiltersToRequest translates dashboard filter state into the backend's
// request shape. Fields are trimmed and whitespace-only values are omitted:
// an absent key means "no constraint". The paid flag is client-only and is
// never sent upstream.
func FiltersToRequest(f models.TreatmentFilters) models.TreatmentFilterRequest {
	return models.TreatmentFilterRequest{
		DoctorEmail:      strings.TrimSpace(f.DoctorEmail),
		PatientEmail:     strings.TrimSpace(f.PatientEmail),
		FromDate:         strings.TrimSpace(f.StartDate),
		ToDate:           strings.TrimSpace(f.EndDate),
		PrescriptionName: strings.TrimSpace(f.PrescriptionKeyword),
		Notes:            strings.TrimSpace(f.VisitNotesKeyword),
	}
}

// FilterByPaymentStatus applies the client-side paid filter after the fetch;
// the backend has no such parameter. "true" keeps fully paid treatments,
// "false" keeps unpaid and partially paid ones, anything else passes all.
func FilterByPaymentStatus(treatments []models.ReconciledTreatment, paidFlag string) []models.ReconciledTreatment {
	if paidFlag != "true" && paidFlag != "false" {
		return treatments
	}
	wantPaid := paidFlag == "true"
	kept := make([]models.ReconciledTreatment, 0, len(treatments))
	for _, t := range treatments {
		if (t.PaymentStatus == models.Paid) == wantPaid {
			kept = append(kept, t)
		}
	}
	return kept
}

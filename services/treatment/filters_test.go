package treatment

import (
	"encoding/json"
	"testing"

	"clinicdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersToRequestOmitsBlankFields(t *testing.T) {
	req := FiltersToRequest(models.TreatmentFilters{
		DoctorEmail:  "a@b.com",
		PatientEmail: "  ",
		StartDate:    "",
		Paid:         "true",
	})

	assert.Equal(t, models.TreatmentFilterRequest{DoctorEmail: "a@b.com"}, req)

	// On the wire only the doctor constraint appears; the paid flag never does.
	payload, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"doctorEmail":"a@b.com"}`, string(payload))
}

func TestFiltersToRequestMapsFieldNames(t *testing.T) {
	req := FiltersToRequest(models.TreatmentFilters{
		DoctorEmail:         " dr@clinic.com ",
		PatientEmail:        "pat@clinic.com",
		StartDate:           "2026-01-01",
		EndDate:             "2026-02-01",
		PrescriptionKeyword: "amoxicillin",
		VisitNotesKeyword:   "follow-up",
	})

	assert.Equal(t, models.TreatmentFilterRequest{
		DoctorEmail:      "dr@clinic.com",
		PatientEmail:     "pat@clinic.com",
		FromDate:         "2026-01-01",
		ToDate:           "2026-02-01",
		PrescriptionName: "amoxicillin",
		Notes:            "follow-up",
	}, req)
}

func reconciledSet() []models.ReconciledTreatment {
	return []models.ReconciledTreatment{
		Reconcile(models.Treatment{ID: "paid", Cost: 100, AmountPaid: 100}),
		Reconcile(models.Treatment{ID: "unpaid", Cost: 100, AmountPaid: 0}),
		Reconcile(models.Treatment{ID: "partial", Cost: 100, AmountPaid: 40}),
	}
}

func TestFilterByPaymentStatusTrueKeepsPaidOnly(t *testing.T) {
	kept := FilterByPaymentStatus(reconciledSet(), "true")
	require.Len(t, kept, 1)
	assert.Equal(t, "paid", kept[0].ID)
}

func TestFilterByPaymentStatusFalseKeepsOwing(t *testing.T) {
	kept := FilterByPaymentStatus(reconciledSet(), "false")
	require.Len(t, kept, 2)
	assert.Equal(t, "unpaid", kept[0].ID)
	assert.Equal(t, "partial", kept[1].ID)
}

func TestFilterByPaymentStatusOtherValuesPassThrough(t *testing.T) {
	for _, flag := range []string{"", "all", "TRUE", "yes"} {
		assert.Len(t, FilterByPaymentStatus(reconciledSet(), flag), 3, "flag %q", flag)
	}
}

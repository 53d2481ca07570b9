package models

import "time"

// PaymentStatus is derived from cost and amount paid, never stored.
type PaymentStatus string

const (
	Paid    PaymentStatus = "Paid"
	Unpaid  PaymentStatus = "Unpaid"
	Partial PaymentStatus = "Partial"
)

// Prescription is one medication line on a treatment. The list is replaced
// as a whole on save, never patched per item.
type Prescription struct {
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Instructions   string `json:"instructions,omitempty"`
}

// Treatment is a treatment record as the clinic backend returns it.
type Treatment struct {
	ID                        string         `json:"id"`
	DoctorName                string         `json:"doctorName"`
	PatientName               string         `json:"patientName"`
	TreatmentDescription      string         `json:"treatmentDescription"`
	Cost                      float64        `json:"cost"`
	AmountPaid                float64        `json:"amountPaid"`
	RemainingBalance          float64        `json:"remainingBalance"`
	InstallmentPeriodInMonths int            `json:"installmentPeriodInMonths"`
	CreatedAt                 time.Time      `json:"createdAt"`
	VisitNotes                string         `json:"visitNotes,omitempty"`
	Prescriptions             []Prescription `json:"prescriptions,omitempty"`
}

// ReconciledTreatment is a Treatment with the derived payment fields the
// dashboards render. Overpaid flags amountPaid > cost; the balance is still
// clamped to zero in that case.
type ReconciledTreatment struct {
	Treatment
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Overpaid      bool          `json:"overpaid,omitempty"`
}

// TreatmentFilters is the dashboard-side filter state. Paid is a client-only
// filter; it never reaches the backend.
type TreatmentFilters struct {
	DoctorEmail         string `json:"doctorEmail"`
	PatientEmail        string `json:"patientEmail"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	PrescriptionKeyword string `json:"prescriptionKeyword"`
	VisitNotesKeyword   string `json:"visitNotesKeyword"`
	Paid                string `json:"paid"`
}

// TreatmentFilterRequest is the sparse upstream form: an absent key means
// "no constraint", not "match empty string".
type TreatmentFilterRequest struct {
	DoctorEmail      string `json:"doctorEmail,omitempty"`
	PatientEmail     string `json:"patientEmail,omitempty"`
	FromDate         string `json:"fromDate,omitempty"`
	ToDate           string `json:"toDate,omitempty"`
	PrescriptionName string `json:"prescriptionName,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// TreatmentUpdate carries the patchable treatment fields; nil leaves a field
// unchanged.
type TreatmentUpdate struct {
	Notes                     *string  `json:"notes,omitempty"`
	AmountPaid                *float64 `json:"amountPaid,omitempty"`
	InstallmentPeriodInMonths *int     `json:"installmentPeriodInMonths,omitempty"`
}

// ReplacePrescriptionsRequest is the full-replace prescriptions payload.
type ReplacePrescriptionsRequest struct {
	Prescriptions []Prescription `json:"prescriptions"`
}

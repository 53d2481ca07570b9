package backend

import (
	"context"
	"net/http"

	"clinicdesk/models"
)

// FilterTreatments runs a sparse server-side filter. The payment-status
// filter is intentionally absent here; the backend does not support it.
func (c *Client) FilterTreatments(ctx context.Context, auth string, req models.TreatmentFilterRequest) ([]models.Treatment, error) {
	var treatments []models.Treatment
	if err := c.do(ctx, auth, http.MethodPost, "/treatments/filter", nil, req, &treatments); err != nil {
		return nil, err
	}
	return treatments, nil
}

// UpdateTreatment patches notes, amountPaid and/or the installment period.
func (c *Client) UpdateTreatment(ctx context.Context, auth, id string, upd models.TreatmentUpdate) (*models.Treatment, error) {
	var updated models.Treatment
	if err := c.do(ctx, auth, http.MethodPatch, "/treatments/"+id, nil, upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ReplacePrescriptions swaps a treatment's prescription list as a whole and
// returns the saved list.
func (c *Client) ReplacePrescriptions(ctx context.Context, auth, id string, prescriptions []models.Prescription) ([]models.Prescription, error) {
	req := models.ReplacePrescriptionsRequest{Prescriptions: prescriptions}
	var saved []models.Prescription
	if err := c.do(ctx, auth, http.MethodPut, "/treatments/"+id+"/prescriptions", nil, req, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// Package treatment derives what the dashboards show about treatments:
// payment status and balance, the sparse upstream filter request, the
// client-only paid filter, and keyword highlighting.
package treatment

import (
	"clinicdesk/models"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// RemainingBalance is max(0, cost-amountPaid). Overpayment clamps to zero;
// it is surfaced via the Overpaid flag, never as an error.
func RemainingBalance(cost, amountPaid float64) float64 {
	if balance := cost - amountPaid; balance > 0 {
		return balance
	}
	return 0
}

// PaymentStatus classifies a treatment: Paid when nothing is owed, Unpaid
// when nothing has been paid toward a non-zero cost, Partial otherwise.
// A zero-cost treatment counts as Paid.
func PaymentStatus(cost, amountPaid float64) models.PaymentStatus {
	if RemainingBalance(cost, amountPaid) == 0 {
		return models.Paid
	}
	if amountPaid == 0 {
		return models.Unpaid
	}
	return models.Partial
}

// Reconcile recomputes the derived payment fields from cost and amountPaid,
// overriding whatever balance the backend sent.
func Reconcile(t models.Treatment) models.ReconciledTreatment {
	t.RemainingBalance = RemainingBalance(t.Cost, t.AmountPaid)
	overpaid := t.AmountPaid > t.Cost
	if overpaid {
		utils.GetLogger().Warn("Treatment is overpaid",
			zap.String("treatmentId", t.ID),
			zap.Float64("cost", t.Cost),
			zap.Float64("amountPaid", t.AmountPaid))
	}
	return models.ReconciledTreatment{
		Treatment:     t,
		PaymentStatus: PaymentStatus(t.Cost, t.AmountPaid),
		Overpaid:      overpaid,
	}
}

package treatment

import (
	"testing"

	"clinicdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestRemainingBalanceNeverNegative(t *testing.T) {
	cases := []struct {
		name       string
		cost, paid float64
		want       float64
	}{
		{"nothing paid", 500, 0, 500},
		{"partially paid", 500, 200, 300},
		{"exactly paid", 500, 500, 0},
		{"overpaid clamps to zero", 500, 700, 0},
		{"zero cost", 0, 0, 0},
		{"zero cost overpaid", 0, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemainingBalance(tc.cost, tc.paid)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestPaymentStatusClassification(t *testing.T) {
	cases := []struct {
		name       string
		cost, paid float64
		want       models.PaymentStatus
	}{
		{"fully paid", 500, 500, models.Paid},
		{"overpaid still paid", 500, 700, models.Paid},
		{"untouched", 500, 0, models.Unpaid},
		{"partial", 500, 200, models.Partial},
		{"free treatment counts as paid", 0, 0, models.Paid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PaymentStatus(tc.cost, tc.paid))
		})
	}
}

func TestReconcileOverridesStoredBalance(t *testing.T) {
	// Whatever balance the backend sent, the derived value wins.
	rec := Reconcile(models.Treatment{ID: "t1", Cost: 500, AmountPaid: 200, RemainingBalance: 999})
	assert.Equal(t, 300.0, rec.RemainingBalance)
	assert.Equal(t, models.Partial, rec.PaymentStatus)
	assert.False(t, rec.Overpaid)
}

func TestReconcileFlagsOverpayment(t *testing.T) {
	rec := Reconcile(models.Treatment{ID: "t2", Cost: 100, AmountPaid: 150})
	assert.Equal(t, 0.0, rec.RemainingBalance)
	assert.Equal(t, models.Paid, rec.PaymentStatus)
	assert.True(t, rec.Overpaid)
}

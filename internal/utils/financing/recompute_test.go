package financing

import (
	"testing"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseFormState() FormState {
	return FormState{
		PropertyPrice:      10_000_000,
		DownPaymentPercent: 20,
		InterestRate:       10,
		LoanTermYears:      5,
		PaymentsPerYear:    MonthlyPayments,
		PropertyTaxes:      50_000,
		HomeInsurance:      25_000,
		ValuationFees:      10_000,
		LegalFees:          15_000,
	}
}

func TestRecompute_DerivesAllFields(t *testing.T) {
	derived, err := Recompute(baseFormState())
	require.NoError(t, err)

	assert.InDelta(t, 2_000_000, derived.DownPaymentAmount, 0.01)
	assert.InDelta(t, 8_000_000, derived.LoanAmount, 0.01)
	assert.Equal(t, "80.00", derived.LTVFormatted)

	// totalCost == loanAmount + totalInterest + sum(additional costs)
	additional := 50_000.0 + 25_000 + 10_000 + 15_000
	assert.InDelta(t, derived.LoanAmount+derived.TotalInterest+additional, derived.TotalCost, 0.01)

	// monthlyPayment * numberOfPayments - loanAmount == totalInterest
	assert.InDelta(t, derived.TotalInterest, derived.PeriodicPayment*60-derived.LoanAmount, 0.01)
}

func TestRecompute_DownPaymentBoundaries(t *testing.T) {
	state := baseFormState()

	state.DownPaymentPercent = 0
	derived, err := Recompute(state)
	require.NoError(t, err)
	assert.Equal(t, state.PropertyPrice, derived.LoanAmount)
	assert.Equal(t, "100.00", derived.LTVFormatted)

	state.DownPaymentPercent = 50
	derived, err = Recompute(state)
	require.NoError(t, err)
	assert.Equal(t, state.PropertyPrice*0.5, derived.LoanAmount)
	assert.Equal(t, "50.00", derived.LTVFormatted)
}

func TestRecompute_Idempotent(t *testing.T) {
	state := baseFormState()
	first, err := Recompute(state)
	require.NoError(t, err)
	second, err := Recompute(state)
	require.NoError(t, err)

	// Floating point determinism: bit-identical results, including the
	// formatted LTV string.
	assert.Equal(t, first, second)
}

func TestRecompute_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FormState)
	}{
		{"zero property price", func(s *FormState) { s.PropertyPrice = 0 }},
		{"negative property price", func(s *FormState) { s.PropertyPrice = -1 }},
		{"negative down payment percent", func(s *FormState) { s.DownPaymentPercent = -5 }},
		{"full down payment", func(s *FormState) { s.DownPaymentPercent = 100 }},
		{"zero term", func(s *FormState) { s.LoanTermYears = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := baseFormState()
			tt.mutate(&state)
			_, err := Recompute(state)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

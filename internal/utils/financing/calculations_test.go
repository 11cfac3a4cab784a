package financing

import (
	"testing"

	"github.com/homevista/homevista_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLoanSummary_KnownFigures(t *testing.T) {
	// 4,000,000 at 10% over 5 years, monthly: periodicRate = 0.008333...,
	// 60 payments, payment computed via the annuity formula.
	summary, err := ComputeLoanSummary(4_000_000, 10, 5, MonthlyPayments)
	require.NoError(t, err)

	assert.InDelta(t, 84988.18, summary.PeriodicPayment, 0.01)
	assert.InDelta(t, 1_099_290.73, summary.TotalInterest, 0.01)
	assert.InDelta(t, summary.PeriodicPayment*60, summary.TotalPaid, 0.01)
}

func TestComputeLoanSummary_PaymentInterestInvariant(t *testing.T) {
	tests := []struct {
		name            string
		principal       float64
		rate            float64
		termYears       int
		paymentsPerYear int
	}{
		{"small monthly", 100_000, 8, 5, MonthlyPayments},
		{"large monthly", 8_000_000, 12.5, 30, MonthlyPayments},
		{"quarterly", 4_000_000, 10, 5, QuarterlyPayments},
		{"high rate", 500_000, 20, 10, MonthlyPayments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := ComputeLoanSummary(tt.principal, tt.rate, tt.termYears, tt.paymentsPerYear)
			require.NoError(t, err)

			n := float64(tt.termYears * tt.paymentsPerYear)
			// periodicPayment * n - principal == totalInterest
			assert.InDelta(t, summary.TotalInterest, summary.PeriodicPayment*n-tt.principal, 0.01)
			assert.InDelta(t, summary.TotalPaid, tt.principal+summary.TotalInterest, 0.01)
		})
	}
}

func TestComputeLoanSummary_Deterministic(t *testing.T) {
	first, err := ComputeLoanSummary(4_000_000, 10, 5, MonthlyPayments)
	require.NoError(t, err)
	second, err := ComputeLoanSummary(4_000_000, 10, 5, MonthlyPayments)
	require.NoError(t, err)

	// Bit-identical, not merely within tolerance.
	assert.Equal(t, first, second)
}

func TestComputeLoanSummary_RateMonotonicity(t *testing.T) {
	low, err := ComputeLoanSummary(1_000_000, 8, 15, MonthlyPayments)
	require.NoError(t, err)
	mid, err := ComputeLoanSummary(1_000_000, 12, 15, MonthlyPayments)
	require.NoError(t, err)
	high, err := ComputeLoanSummary(1_000_000, 20, 15, MonthlyPayments)
	require.NoError(t, err)

	assert.Greater(t, mid.PeriodicPayment, low.PeriodicPayment)
	assert.Greater(t, high.PeriodicPayment, mid.PeriodicPayment)
	assert.Greater(t, mid.TotalInterest, low.TotalInterest)
	assert.Greater(t, high.TotalInterest, mid.TotalInterest)
}

func TestComputeLoanSummary_ZeroRate(t *testing.T) {
	// Not reachable under policy, but must not produce NaN or Inf.
	summary, err := ComputeLoanSummary(120_000, 0, 10, MonthlyPayments)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, summary.PeriodicPayment, 0.0001)
	assert.InDelta(t, 0.0, summary.TotalInterest, 0.0001)
}

func TestComputeLoanSummary_InvalidInputs(t *testing.T) {
	tests := []struct {
		name            string
		principal       float64
		rate            float64
		termYears       int
		paymentsPerYear int
	}{
		{"zero principal", 0, 10, 5, MonthlyPayments},
		{"negative principal", -100, 10, 5, MonthlyPayments},
		{"zero term", 100_000, 10, 0, MonthlyPayments},
		{"negative term", 100_000, 10, -5, MonthlyPayments},
		{"negative rate", 100_000, -1, 5, MonthlyPayments},
		{"bad frequency", 100_000, 10, 5, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeLoanSummary(tt.principal, tt.rate, tt.termYears, tt.paymentsPerYear)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestLoanToValue(t *testing.T) {
	ltv, err := LoanToValue(8_000_000, 10_000_000)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, ltv, 0.0001)
	assert.Equal(t, "80.00", FormatLTV(ltv))

	_, err = LoanToValue(1_000_000, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 84988.18, Round2(84988.17884507))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, -2.35, Round2(-2.346))
}

func TestValidatePolicy(t *testing.T) {
	assert.NoError(t, ValidatePolicy(8, 5))
	assert.NoError(t, ValidatePolicy(20, 30))
	assert.ErrorIs(t, ValidatePolicy(7.99, 15), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidatePolicy(20.01, 15), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidatePolicy(10, 7), apperrors.ErrValidation)
}

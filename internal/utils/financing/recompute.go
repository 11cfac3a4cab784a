package financing

import (
	"fmt"

	"github.com/homevista/homevista_backend/internal/apperrors"
)

// FormState is the complete set of user-editable loan inputs. Derived figures
// are always recomputed from the whole state; nothing here is patched
// incrementally, which is what keeps derived values from going stale when a
// single field changes.
type FormState struct {
	PropertyPrice      float64
	DownPaymentPercent float64
	InterestRate       float64 // Annual percent
	LoanTermYears      int
	PaymentsPerYear    int
	PropertyTaxes      float64
	HomeInsurance      float64
	ValuationFees      float64
	LegalFees          float64
}

// Derived holds every figure computed from a FormState. Values are unrounded
// except LTVFormatted, which carries the persisted-format two-decimal string.
type Derived struct {
	DownPaymentAmount float64
	LoanAmount        float64
	PeriodicPayment   float64
	TotalInterest     float64
	TotalCost         float64
	LTV               float64
	LTVFormatted      string
}

// Recompute derives all loan figures from the full form state. It is a pure
// function: calling it twice with the same state yields bit-identical results.
func Recompute(state FormState) (Derived, error) {
	if state.PropertyPrice <= 0 {
		return Derived{}, fmt.Errorf("%w: property price must be positive, got %v", apperrors.ErrValidation, state.PropertyPrice)
	}
	if state.DownPaymentPercent < 0 || state.DownPaymentPercent >= 100 {
		return Derived{}, fmt.Errorf("%w: down payment percent must be in [0, 100), got %v", apperrors.ErrValidation, state.DownPaymentPercent)
	}

	downPaymentAmount := state.PropertyPrice * state.DownPaymentPercent / 100
	loanAmount := state.PropertyPrice - downPaymentAmount

	summary, err := ComputeLoanSummary(loanAmount, state.InterestRate, state.LoanTermYears, state.PaymentsPerYear)
	if err != nil {
		return Derived{}, err
	}

	ltv, err := LoanToValue(loanAmount, state.PropertyPrice)
	if err != nil {
		return Derived{}, err
	}

	additionalCosts := state.PropertyTaxes + state.HomeInsurance + state.ValuationFees + state.LegalFees

	return Derived{
		DownPaymentAmount: downPaymentAmount,
		LoanAmount:        loanAmount,
		PeriodicPayment:   summary.PeriodicPayment,
		TotalInterest:     summary.TotalInterest,
		TotalCost:         loanAmount + summary.TotalInterest + additionalCosts,
		LTV:               ltv,
		LTVFormatted:      FormatLTV(ltv),
	}, nil
}

package financing

import (
	"fmt"
	"math"

	"github.com/homevista/homevista_backend/internal/apperrors"
)

// Payment cadences supported by the engine.
const (
	MonthlyPayments   = 12
	QuarterlyPayments = 4
)

// Policy bounds for finance applications. The math below tolerates any
// positive inputs; these bounds are enforced at the service boundary.
const (
	MinInterestRate = 8.0
	MaxInterestRate = 20.0
)

// AllowedLoanTerms is the set of loan terms (in years) accepted by policy.
var AllowedLoanTerms = []int{5, 10, 15, 20, 25, 30}

// LoanSummary holds the headline figures of an amortizing loan.
// Values are unrounded; round at the persistence/presentation boundary only.
type LoanSummary struct {
	PeriodicPayment float64
	TotalInterest   float64
	TotalPaid       float64
}

// ComputeLoanSummary derives the periodic payment and interest totals of a
// standard amortizing loan using the annuity formula.
//
// annualRatePercent is a percentage (8 means 8%). A zero rate cannot be
// reached through the policy bounds but must not blow up the formula, so it
// degenerates to straight principal division instead of producing NaN.
func ComputeLoanSummary(principal, annualRatePercent float64, termYears, paymentsPerYear int) (LoanSummary, error) {
	if principal <= 0 {
		return LoanSummary{}, fmt.Errorf("%w: principal must be positive, got %v", apperrors.ErrValidation, principal)
	}
	if termYears <= 0 {
		return LoanSummary{}, fmt.Errorf("%w: loan term must be positive, got %d", apperrors.ErrValidation, termYears)
	}
	if annualRatePercent < 0 {
		return LoanSummary{}, fmt.Errorf("%w: interest rate cannot be negative, got %v", apperrors.ErrValidation, annualRatePercent)
	}
	if paymentsPerYear != MonthlyPayments && paymentsPerYear != QuarterlyPayments {
		return LoanSummary{}, fmt.Errorf("%w: payments per year must be %d or %d, got %d", apperrors.ErrValidation, MonthlyPayments, QuarterlyPayments, paymentsPerYear)
	}

	periodicRate := annualRatePercent / 100 / float64(paymentsPerYear)
	numberOfPayments := termYears * paymentsPerYear

	var periodicPayment float64
	if periodicRate == 0 {
		periodicPayment = principal / float64(numberOfPayments)
	} else {
		periodicPayment = (periodicRate * principal) / (1 - math.Pow(1+periodicRate, float64(-numberOfPayments)))
	}

	totalPaid := periodicPayment * float64(numberOfPayments)
	return LoanSummary{
		PeriodicPayment: periodicPayment,
		TotalInterest:   totalPaid - principal,
		TotalPaid:       totalPaid,
	}, nil
}

// LoanToValue returns the loan-to-value ratio as a percentage.
func LoanToValue(loanAmount, propertyPrice float64) (float64, error) {
	if propertyPrice <= 0 {
		return 0, fmt.Errorf("%w: property price must be positive, got %v", apperrors.ErrValidation, propertyPrice)
	}
	if loanAmount < 0 {
		return 0, fmt.Errorf("%w: loan amount cannot be negative, got %v", apperrors.ErrValidation, loanAmount)
	}
	return (loanAmount / propertyPrice) * 100, nil
}

// FormatLTV formats an LTV percentage as the two-decimal string persisted and
// displayed downstream.
func FormatLTV(ltv float64) string {
	return fmt.Sprintf("%.2f", ltv)
}

// Round2 rounds a monetary value to two decimal places. Apply only at the
// persistence/presentation boundary, never between intermediate steps.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidatePolicy checks the policy constraints for finance application inputs:
// interest rate within [8, 20] and term one of AllowedLoanTerms.
func ValidatePolicy(annualRatePercent float64, termYears int) error {
	if annualRatePercent < MinInterestRate || annualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: interest rate must be between %v and %v percent, got %v",
			apperrors.ErrValidation, MinInterestRate, MaxInterestRate, annualRatePercent)
	}
	for _, t := range AllowedLoanTerms {
		if termYears == t {
			return nil
		}
	}
	return fmt.Errorf("%w: loan term must be one of %v years, got %d", apperrors.ErrValidation, AllowedLoanTerms, termYears)
}

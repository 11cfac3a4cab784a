package financing

import (
	"time"
)

// ScheduleEntry is one period's breakdown in an amortization schedule.
type ScheduleEntry struct {
	PeriodIndex      int       `json:"periodIndex"` // 1-based
	DueDate          time.Time `json:"dueDate"`
	PrincipalPortion float64   `json:"principalPortion"`
	InterestPortion  float64   `json:"interestPortion"`
	RemainingBalance float64   `json:"remainingBalance"`
}

// AmortizationSchedule produces the full payment breakdown of an amortizing
// loan: termYears * paymentsPerYear entries, each dated one period after the
// previous starting from start.
//
// Schedule granularity follows paymentsPerYear, so a quarterly loan gets a
// quarterly schedule consistent with its summary figures. The final entry's
// principal portion absorbs the accumulated floating-point drift so the
// closing balance is exactly zero.
func AmortizationSchedule(principal, annualRatePercent float64, termYears, paymentsPerYear int, start time.Time) ([]ScheduleEntry, error) {
	summary, err := ComputeLoanSummary(principal, annualRatePercent, termYears, paymentsPerYear)
	if err != nil {
		return nil, err
	}

	periodicRate := annualRatePercent / 100 / float64(paymentsPerYear)
	numberOfPayments := termYears * paymentsPerYear
	monthsPerPeriod := 12 / paymentsPerYear

	entries := make([]ScheduleEntry, 0, numberOfPayments)
	remaining := principal
	for i := 1; i <= numberOfPayments; i++ {
		interestPortion := remaining * periodicRate
		principalPortion := summary.PeriodicPayment - interestPortion
		if i == numberOfPayments {
			// Close out the loan exactly.
			principalPortion = remaining
		}
		remaining -= principalPortion

		entries = append(entries, ScheduleEntry{
			PeriodIndex:      i,
			DueDate:          start.AddDate(0, i*monthsPerPeriod, 0),
			PrincipalPortion: principalPortion,
			InterestPortion:  interestPortion,
			RemainingBalance: remaining,
		})
	}
	return entries, nil
}

package domain

// LoanType distinguishes fixed-rate loans from floating-rate loans.
type LoanType string

const (
	FixedRate    LoanType = "FIXED"
	FloatingRate LoanType = "FLOATING"
)

// PaymentFrequency is the compounding/payment cadence of a loan.
type PaymentFrequency string

const (
	Monthly   PaymentFrequency = "MONTHLY"
	Quarterly PaymentFrequency = "QUARTERLY"
)

// PaymentsPerYear returns the number of payment periods in a year for the frequency.
// Unknown values fall back to monthly.
func (f PaymentFrequency) PaymentsPerYear() int {
	if f == Quarterly {
		return 4
	}
	return 12
}

// ApplicationStatus is the lifecycle state of a finance application.
// Applications start PENDING and move exactly once to APPROVED or REJECTED.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// FinanceApplication is a loan/finance application for a property.
//
// The input fields come from the applicant; the derived fields are computed
// server-side from the inputs before persistence and are never accepted from
// the client. MonthlyPayment, TotalInterest and TotalCost are rounded to two
// decimal places at the persistence boundary; LTV is stored as a formatted
// two-decimal string because downstream display code expects a string.
type FinanceApplication struct {
	ApplicationID string `json:"applicationID"` // Primary Key (e.g., UUID)
	PropertyID    string `json:"propertyID"`    // FK -> properties.property_id
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	UserPhone     string `json:"userPhone"`
	SelectedBank  string `json:"selectedBank"`

	// Inputs
	LoanAmount       float64          `json:"loanAmount"`  // Principal after down payment, > 0
	DownPayment      float64          `json:"downPayment"` // Currency units, >= 0
	InterestRate     float64          `json:"interestRate"`
	LoanTerm         int              `json:"loanTerm"` // Years
	LoanType         LoanType         `json:"loanType"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`
	PropertyTaxes    float64          `json:"propertyTaxes"`
	HomeInsurance    float64          `json:"homeInsurance"`
	ValuationFees    float64          `json:"valuationFees"`
	LegalFees        float64          `json:"legalFees"`

	// Derived
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	LTV            string  `json:"ltv"`

	Status ApplicationStatus `json:"status"`
	AuditFields
}

// AdditionalCosts sums the four fixed additional-cost fields.
func (a FinanceApplication) AdditionalCosts() float64 {
	return a.PropertyTaxes + a.HomeInsurance + a.ValuationFees + a.LegalFees
}

// IsTerminal reports whether the application has reached a final state.
func (a FinanceApplication) IsTerminal() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}

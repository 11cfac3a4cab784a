package models

// FinanceApplication is the database representation of a finance application.
// Derived monetary columns are stored rounded to two decimal places; ltv is a
// formatted string per the persisted-format contract.
type FinanceApplication struct {
	ApplicationID string `db:"application_id"`
	PropertyID    string `db:"property_id"`
	UserName      string `db:"user_name"`
	UserEmail     string `db:"user_email"`
	UserPhone     string `db:"user_phone"`
	SelectedBank  string `db:"selected_bank"`

	LoanAmount       float64 `db:"loan_amount"`
	DownPayment      float64 `db:"down_payment"`
	InterestRate     float64 `db:"interest_rate"`
	LoanTerm         int     `db:"loan_term"`
	LoanType         string  `db:"loan_type"`
	PaymentFrequency string  `db:"payment_frequency"`
	PropertyTaxes    float64 `db:"property_taxes"`
	HomeInsurance    float64 `db:"home_insurance"`
	ValuationFees    float64 `db:"valuation_fees"`
	LegalFees        float64 `db:"legal_fees"`

	MonthlyPayment float64 `db:"monthly_payment"`
	TotalInterest  float64 `db:"total_interest"`
	TotalCost      float64 `db:"total_cost"`
	LTV            string  `db:"ltv"`

	Status string `db:"status"`
	AuditFields
}

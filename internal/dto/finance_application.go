package dto

import (
	"time"

	"github.com/homevista/homevista_backend/internal/core/domain"
	"github.com/homevista/homevista_backend/internal/utils/financing"
)

// CreateFinanceApplicationRequest defines the data submitted by the multi-step
// finance wizard. Derived fields are intentionally absent: the server
// recomputes them from the inputs, so tampered client-side figures never reach
// storage.
type CreateFinanceApplicationRequest struct {
	PropertyID   string `json:"propertyId" binding:"required"`
	UserName     string `json:"userName" binding:"required"`
	UserEmail    string `json:"userEmail" binding:"required,email"`
	UserPhone    string `json:"userPhone" binding:"required,phone"`
	SelectedBank string `json:"selectedBank" binding:"required"`

	LoanAmount       float64 `json:"loanAmount" binding:"required,gt=0"`
	DownPayment      float64 `json:"downPayment" binding:"gte=0"`
	InterestRate     float64 `json:"interestRate" binding:"required,gte=8,lte=20"`
	LoanTerm         int     `json:"loanTerm" binding:"required,oneof=5 10 15 20 25 30"`
	LoanType         string  `json:"loanType" binding:"required,oneof=FIXED FLOATING"`
	PaymentFrequency string  `json:"paymentFrequency" binding:"required,oneof=MONTHLY QUARTERLY"`
	PropertyTaxes    float64 `json:"propertyTaxes" binding:"gte=0"`
	HomeInsurance    float64 `json:"homeInsurance" binding:"gte=0"`
	ValuationFees    float64 `json:"valuationFees" binding:"gte=0"`
	LegalFees        float64 `json:"legalFees" binding:"gte=0"`
}

// LoanQuoteRequest is the full form state of the financing calculator.
// Derived figures are computed from the whole state on every call, so a
// change to any one field never leaves stale numbers behind.
type LoanQuoteRequest struct {
	PropertyPrice      float64 `json:"propertyPrice" binding:"required,gt=0"`
	DownPaymentPercent float64 `json:"downPaymentPercent" binding:"gte=0,lt=100"`
	InterestRate       float64 `json:"interestRate" binding:"required,gte=8,lte=20"`
	LoanTerm           int     `json:"loanTerm" binding:"required,oneof=5 10 15 20 25 30"`
	PaymentFrequency   string  `json:"paymentFrequency" binding:"required,oneof=MONTHLY QUARTERLY"`
	PropertyTaxes      float64 `json:"propertyTaxes" binding:"gte=0"`
	HomeInsurance      float64 `json:"homeInsurance" binding:"gte=0"`
	ValuationFees      float64 `json:"valuationFees" binding:"gte=0"`
	LegalFees          float64 `json:"legalFees" binding:"gte=0"`
}

// LoanQuoteResponse carries the derived loan figures, rounded at this
// presentation boundary.
type LoanQuoteResponse struct {
	DownPaymentAmount float64 `json:"downPaymentAmount"`
	LoanAmount        float64 `json:"loanAmount"`
	PeriodicPayment   float64 `json:"periodicPayment"`
	TotalInterest     float64 `json:"totalInterest"`
	TotalCost         float64 `json:"totalCost"`
	LTV               string  `json:"ltv"`
}

// ToLoanQuoteResponse rounds and wraps the raw derived figures.
func ToLoanQuoteResponse(d financing.Derived) LoanQuoteResponse {
	return LoanQuoteResponse{
		DownPaymentAmount: financing.Round2(d.DownPaymentAmount),
		LoanAmount:        financing.Round2(d.LoanAmount),
		PeriodicPayment:   financing.Round2(d.PeriodicPayment),
		TotalInterest:     financing.Round2(d.TotalInterest),
		TotalCost:         financing.Round2(d.TotalCost),
		LTV:               d.LTVFormatted,
	}
}

// FinanceApplicationResponse defines the data returned for a finance application.
type FinanceApplicationResponse struct {
	ApplicationID string `json:"applicationID"`
	PropertyID    string `json:"propertyID"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	UserPhone     string `json:"userPhone"`
	SelectedBank  string `json:"selectedBank"`

	LoanAmount       float64 `json:"loanAmount"`
	DownPayment      float64 `json:"downPayment"`
	InterestRate     float64 `json:"interestRate"`
	LoanTerm         int     `json:"loanTerm"`
	LoanType         string  `json:"loanType"`
	PaymentFrequency string  `json:"paymentFrequency"`
	PropertyTaxes    float64 `json:"propertyTaxes"`
	HomeInsurance    float64 `json:"homeInsurance"`
	ValuationFees    float64 `json:"valuationFees"`
	LegalFees        float64 `json:"legalFees"`

	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	LTV            string  `json:"ltv"`

	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToFinanceApplicationResponse converts a domain.FinanceApplication to its response DTO
func ToFinanceApplicationResponse(app *domain.FinanceApplication) FinanceApplicationResponse {
	return FinanceApplicationResponse{
		ApplicationID:    app.ApplicationID,
		PropertyID:       app.PropertyID,
		UserName:         app.UserName,
		UserEmail:        app.UserEmail,
		UserPhone:        app.UserPhone,
		SelectedBank:     app.SelectedBank,
		LoanAmount:       app.LoanAmount,
		DownPayment:      app.DownPayment,
		InterestRate:     app.InterestRate,
		LoanTerm:         app.LoanTerm,
		LoanType:         string(app.LoanType),
		PaymentFrequency: string(app.PaymentFrequency),
		PropertyTaxes:    app.PropertyTaxes,
		HomeInsurance:    app.HomeInsurance,
		ValuationFees:    app.ValuationFees,
		LegalFees:        app.LegalFees,
		MonthlyPayment:   app.MonthlyPayment,
		TotalInterest:    app.TotalInterest,
		TotalCost:        app.TotalCost,
		LTV:              app.LTV,
		Status:           string(app.Status),
		CreatedAt:        app.CreatedAt,
		LastUpdatedAt:    app.LastUpdatedAt,
	}
}

// ToListFinanceApplicationResponse converts a slice of applications to response DTOs
func ToListFinanceApplicationResponse(apps []domain.FinanceApplication) []FinanceApplicationResponse {
	res := make([]FinanceApplicationResponse, len(apps))
	for i := range apps {
		res[i] = ToFinanceApplicationResponse(&apps[i])
	}
	return res
}

// ListFinanceApplicationsParams defines query parameters for listing applications.
type ListFinanceApplicationsParams struct {
	Limit  int     `form:"limit,default=20"`
	Offset int     `form:"offset,default=0"`
	Status *string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// ListFinanceApplicationsResponse wraps the list of applications.
type ListFinanceApplicationsResponse struct {
	Applications []FinanceApplicationResponse `json:"applications"`
}

// ScheduleEntryResponse is one amortization period, monetary values rounded
// at this presentation boundary.
type ScheduleEntryResponse struct {
	PeriodIndex      int       `json:"periodIndex"`
	DueDate          time.Time `json:"dueDate"`
	PrincipalPortion float64   `json:"principalPortion"`
	InterestPortion  float64   `json:"interestPortion"`
	RemainingBalance float64   `json:"remainingBalance"`
}

// AmortizationScheduleResponse wraps an application's payment schedule.
type AmortizationScheduleResponse struct {
	ApplicationID string                  `json:"applicationID"`
	Entries       []ScheduleEntryResponse `json:"entries"`
}

// ToAmortizationScheduleResponse rounds and wraps raw schedule entries.
func ToAmortizationScheduleResponse(applicationID string, entries []financing.ScheduleEntry) AmortizationScheduleResponse {
	res := AmortizationScheduleResponse{
		ApplicationID: applicationID,
		Entries:       make([]ScheduleEntryResponse, len(entries)),
	}
	for i, e := range entries {
		res.Entries[i] = ScheduleEntryResponse{
			PeriodIndex:      e.PeriodIndex,
			DueDate:          e.DueDate,
			PrincipalPortion: financing.Round2(e.PrincipalPortion),
			InterestPortion:  financing.Round2(e.InterestPortion),
			RemainingBalance: financing.Round2(e.RemainingBalance),
		}
	}
	return res
}

// internal/core/domain/emi.go
package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Loan defaults and slider bounds
const (
	DefaultInterestRate   = 8.5
	DefaultTenureYears    = 20
	DefaultDownPaymentPct = 20
	MinInterestRate       = 6.0
	MaxInterestRate       = 15.0
	MinTenureYears        = 5
	MaxTenureYears        = 30
	MinDownPaymentPct     = 10
	MaxDownPaymentPct     = 50
)

// LoanInput holds the parameters of an amortized home loan
type LoanInput struct {
	Principal   float64 `json:"loan_amount"`
	AnnualRate  float64 `json:"interest_rate"`
	TenureYears int     `json:"loan_tenure"`
}

// EMIBreakdown is the result of an EMI calculation, rounded to whole rupees
type EMIBreakdown struct {
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	MonthlyEMI    decimal.Decimal `json:"emi"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Payments      int             `json:"payments"`
}

// DefaultLoan finances 80% of price at the default rate and tenure.
func DefaultLoan(price int64) LoanInput {
	return LoanFromDownPayment(price, DefaultDownPaymentPct, DefaultInterestRate, DefaultTenureYears)
}

// LoanFromDownPayment derives the principal from a down payment percentage.
// The principal never goes below zero.
func LoanFromDownPayment(price int64, downPaymentPct float64, rate float64, years int) LoanInput {
	down := float64(price) * downPaymentPct / 100
	principal := float64(price) - down
	if principal < 0 {
		principal = 0
	}
	return LoanInput{Principal: principal, AnnualRate: rate, TenureYears: years}
}

// Validate enforces the calculator's slider bounds.
func (l LoanInput) Validate() error {
	if !finite(l.Principal) || !finite(l.AnnualRate) {
		return fmt.Errorf("%w: loan amount and interest rate must be finite numbers", ErrInvalidInput)
	}
	if l.Principal <= 0 {
		return fmt.Errorf("%w: loan amount must be positive", ErrInvalidInput)
	}
	if l.AnnualRate < MinInterestRate || l.AnnualRate > MaxInterestRate {
		return fmt.Errorf("%w: interest rate must be between %.0f and %.0f", ErrInvalidInput, MinInterestRate, MaxInterestRate)
	}
	if l.TenureYears < MinTenureYears || l.TenureYears > MaxTenureYears {
		return fmt.Errorf("%w: loan tenure must be between %d and %d years", ErrInvalidInput, MinTenureYears, MaxTenureYears)
	}
	return nil
}

// CalculateEMI computes the standard amortized monthly installment.
//
//	r   = rate / 12 / 100
//	n   = years * 12
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)
func CalculateEMI(in LoanInput) (EMIBreakdown, error) {
	if !finite(in.Principal) || !finite(in.AnnualRate) ||
		in.Principal <= 0 || in.AnnualRate <= 0 || in.TenureYears <= 0 {
		return EMIBreakdown{}, ErrInvalidLoan
	}

	monthlyRate := in.AnnualRate / 12 / 100
	n := in.TenureYears * 12
	growth := math.Pow(1+monthlyRate, float64(n))

	emi := in.Principal * monthlyRate * growth / (growth - 1)
	total := emi * float64(n)
	interest := total - in.Principal

	return EMIBreakdown{
		LoanAmount:    decimal.NewFromFloat(in.Principal).Round(0),
		MonthlyEMI:    decimal.NewFromFloat(emi).Round(0),
		TotalInterest: decimal.NewFromFloat(interest).Round(0),
		TotalAmount:   decimal.NewFromFloat(total).Round(0),
		Payments:      n,
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

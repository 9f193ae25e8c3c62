package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

func TestCalculateEMI(t *testing.T) {
	tests := []struct {
		name         string
		input        domain.LoanInput
		wantEMI      int64
		wantTotal    int64
		wantInterest int64
		wantPayments int
	}{
		{
			name:         "ten_lakh_twenty_years",
			input:        domain.LoanInput{Principal: 1_000_000, AnnualRate: 8.5, TenureYears: 20},
			wantEMI:      8678,
			wantTotal:    2082776,
			wantInterest: 1082776,
			wantPayments: 240,
		},
		{
			name:         "five_lakh_five_years",
			input:        domain.LoanInput{Principal: 500_000, AnnualRate: 10, TenureYears: 5},
			wantEMI:      10624,
			wantTotal:    637411,
			wantInterest: 137411,
			wantPayments: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.CalculateEMI(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantEMI, got.MonthlyEMI.IntPart())
			assert.Equal(t, tt.wantTotal, got.TotalAmount.IntPart())
			assert.Equal(t, tt.wantInterest, got.TotalInterest.IntPart())
			assert.Equal(t, tt.wantPayments, got.Payments)
		})
	}
}

func TestCalculateEMI_Guards(t *testing.T) {
	tests := []struct {
		name  string
		input domain.LoanInput
	}{
		{name: "zero_rate", input: domain.LoanInput{Principal: 100000, AnnualRate: 0, TenureYears: 10}},
		{name: "zero_tenure", input: domain.LoanInput{Principal: 100000, AnnualRate: 8, TenureYears: 0}},
		{name: "zero_principal", input: domain.LoanInput{Principal: 0, AnnualRate: 8, TenureYears: 10}},
		{name: "negative_principal", input: domain.LoanInput{Principal: -1, AnnualRate: 8, TenureYears: 10}},
		{name: "nan_principal", input: domain.LoanInput{Principal: math.NaN(), AnnualRate: 8, TenureYears: 10}},
		{name: "infinite_principal", input: domain.LoanInput{Principal: math.Inf(1), AnnualRate: 8, TenureYears: 10}},
		{name: "nan_rate", input: domain.LoanInput{Principal: 100000, AnnualRate: math.NaN(), TenureYears: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.CalculateEMI(tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidLoan)
		})
	}
}

func TestDefaultLoan(t *testing.T) {
	loan := domain.DefaultLoan(5_000_000)

	assert.InDelta(t, 4_000_000, loan.Principal, 0.001)
	assert.Equal(t, 8.5, loan.AnnualRate)
	assert.Equal(t, 20, loan.TenureYears)

	got, err := domain.CalculateEMI(loan)
	require.NoError(t, err)
	assert.Equal(t, int64(34713), got.MonthlyEMI.IntPart())
}

func TestLoanFromDownPayment_NeverNegative(t *testing.T) {
	loan := domain.LoanFromDownPayment(1_000_000, 150, 8.5, 20)
	assert.Zero(t, loan.Principal)

	_, err := domain.CalculateEMI(loan)
	assert.ErrorIs(t, err, domain.ErrInvalidLoan)
}

func TestLoanInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.LoanInput
		wantError bool
	}{
		{name: "within_bounds", input: domain.LoanInput{Principal: 100000, AnnualRate: 8.5, TenureYears: 20}},
		{name: "rate_below_min", input: domain.LoanInput{Principal: 100000, AnnualRate: 5.9, TenureYears: 20}, wantError: true},
		{name: "rate_above_max", input: domain.LoanInput{Principal: 100000, AnnualRate: 15.1, TenureYears: 20}, wantError: true},
		{name: "tenure_below_min", input: domain.LoanInput{Principal: 100000, AnnualRate: 8.5, TenureYears: 4}, wantError: true},
		{name: "tenure_above_max", input: domain.LoanInput{Principal: 100000, AnnualRate: 8.5, TenureYears: 31}, wantError: true},
		{name: "no_principal", input: domain.LoanInput{AnnualRate: 8.5, TenureYears: 20}, wantError: true},
		{name: "nan_principal", input: domain.LoanInput{Principal: math.NaN(), AnnualRate: 8.5, TenureYears: 20}, wantError: true},
		{name: "infinite_principal", input: domain.LoanInput{Principal: math.Inf(1), AnnualRate: 8.5, TenureYears: 20}, wantError: true},
		{name: "nan_rate", input: domain.LoanInput{Principal: 100000, AnnualRate: math.NaN(), TenureYears: 20}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package payrollservice

import (
	"testing"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/pkg/money"
	"github.com/stretchr/testify/assert"
)

func defaultRates(t *testing.T) Rates {
	rates, err := NewRates(&config.Config{
		TaxRate:        "0.30",
		HealthLevyRate: "0.02",
		PensionRate:    "0.06",
	})
	assert.NoError(t, err)
	return rates
}

func TestNewRates(t *testing.T) {
	tests := []struct {
		name        string
		taxRate     string
		expectError bool
	}{
		{name: "Valid rates", taxRate: "0.30"},
		{name: "Non-numeric rate", taxRate: "thirty", expectError: true},
		{name: "Negative rate", taxRate: "-0.1", expectError: true},
		{name: "Rate of one or more", taxRate: "1.0", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRates(&config.Config{
				TaxRate:        tt.taxRate,
				HealthLevyRate: "0.02",
				PensionRate:    "0.06",
			})
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecompute(t *testing.T) {
	rates := defaultRates(t)

	tests := []struct {
		name                 string
		gross                string
		loan                 string
		expectedTaxDeduction string
		expectedNetSalary    string
		expectedError        error
	}{
		{
			name:                 "Gross with loan deduction",
			gross:                "30000.00",
			loan:                 "2000.00",
			expectedTaxDeduction: "13400.00",
			expectedNetSalary:    "16600.00",
		},
		{
			name:                 "Gross without loan deduction",
			gross:                "30000.00",
			loan:                 "0.00",
			expectedTaxDeduction: "11400.00",
			expectedNetSalary:    "18600.00",
		},
		{
			name:                 "Zero gross",
			gross:                "0.00",
			loan:                 "0.00",
			expectedTaxDeduction: "0.00",
			expectedNetSalary:    "0.00",
		},
		{
			name:          "Loan larger than gross",
			gross:         "1000.00",
			loan:          "5000.00",
			expectedError: ErrDeductionsExceedGross,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := domain.PayrollRecord{
				GrossRate:     money.MustParse(tt.gross),
				LoanDeduction: money.MustParse(tt.loan),
			}
			result, err := Recompute(record, rates)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTaxDeduction, result.TaxDeduction.String())
			assert.Equal(t, tt.expectedNetSalary, result.NetSalary.String())
		})
	}
}

// A loan change must run the whole computation again, not patch the old
// deduction. Stale derived values are discarded wholesale.
func TestRecomputeIsFull(t *testing.T) {
	rates := defaultRates(t)

	record := domain.PayrollRecord{
		GrossRate:     money.MustParse("30000.00"),
		LoanDeduction: money.MustParse("2000.00"),
	}
	record, err := Recompute(record, rates)
	assert.NoError(t, err)
	assert.Equal(t, "13400.00", record.TaxDeduction.String())

	record.LoanDeduction = money.MustParse("0.00")
	record, err = Recompute(record, rates)
	assert.NoError(t, err)
	assert.Equal(t, "11400.00", record.TaxDeduction.String())
	assert.Equal(t, "18600.00", record.NetSalary.String())
}

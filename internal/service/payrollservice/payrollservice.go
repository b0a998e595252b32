// Package payrollservice computes teacher gross-to-net salary. The
// computation is a pure function; there is a single recompute path used
// both when a payroll record is first created and on every later change,
// so stored deductions can never drift from the rates.
package payrollservice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/shulepay/shulepay/internal/domain"
)

var ErrDeductionsExceedGross = errors.New("deductions exceed gross rate")

// Rates are the statutory deduction rates as fractions of gross.
type Rates struct {
	Tax        decimal.Decimal
	HealthLevy decimal.Decimal
	Pension    decimal.Decimal
}

func NewRates(cfg *config.Config) (Rates, error) {
	var rates Rates
	for _, r := range []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"tax", cfg.TaxRate, &rates.Tax},
		{"health levy", cfg.HealthLevyRate, &rates.HealthLevy},
		{"pension", cfg.PensionRate, &rates.Pension},
	} {
		d, err := decimal.NewFromString(r.value)
		if err != nil {
			return Rates{}, fmt.Errorf("invalid %s rate %q: %w", r.name, r.value, err)
		}
		if d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return Rates{}, fmt.Errorf("invalid %s rate %q: must be in [0, 1)", r.name, r.value)
		}
		*r.dst = d
	}
	return rates, nil
}

func (r Rates) total() decimal.Decimal {
	return r.Tax.Add(r.HealthLevy).Add(r.Pension)
}

// Recompute derives TaxDeduction and NetSalary in full from GrossRate and
// LoanDeduction. Deductions are never adjusted incrementally.
func Recompute(record domain.PayrollRecord, rates Rates) (domain.PayrollRecord, error) {
	statutory := record.GrossRate.MulRate(rates.total())
	record.TaxDeduction = statutory.Add(record.LoanDeduction)

	net, err := record.GrossRate.Sub(record.TaxDeduction)
	if err != nil {
		return record, fmt.Errorf("%w: gross %s, deductions %s", ErrDeductionsExceedGross, record.GrossRate, record.TaxDeduction)
	}
	record.NetSalary = net

	return record, nil
}

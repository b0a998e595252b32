package feeservice

import (
	"testing"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/pkg/money"
	"github.com/stretchr/testify/assert"
)

func newAccount(total, paid string) domain.FeeAccount {
	return Reassess(domain.FeeAccount{
		TotalFee: money.MustParse(total),
		Paid:     money.MustParse(paid),
	})
}

func TestApplyPayment(t *testing.T) {
	tests := []struct {
		name              string
		account           domain.FeeAccount
		amount            string
		expectedPaid      string
		expectedRemaining string
		expectedFullyPaid bool
		expectedError     error
	}{
		{
			name:              "Partial payment",
			account:           newAccount("500.00", "0.00"),
			amount:            "150.00",
			expectedPaid:      "150.00",
			expectedRemaining: "350.00",
			expectedFullyPaid: false,
		},
		{
			name:              "Exact final payment",
			account:           newAccount("500.00", "450.00"),
			amount:            "50.00",
			expectedPaid:      "500.00",
			expectedRemaining: "0.00",
			expectedFullyPaid: true,
		},
		{
			name:              "Overpayment clamps remaining to zero",
			account:           newAccount("500.00", "450.00"),
			amount:            "60.00",
			expectedPaid:      "510.00",
			expectedRemaining: "0.00",
			expectedFullyPaid: true,
		},
		{
			name:          "Zero amount rejected",
			account:       newAccount("500.00", "100.00"),
			amount:        "0.00",
			expectedError: money.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, fact, err := ApplyPayment(1, tt.account, money.MustParse(tt.amount))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, tt.account, updated, "account must be unchanged on failure")
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPaid, updated.Paid.String())
			assert.Equal(t, tt.expectedRemaining, updated.Remaining.String())
			assert.Equal(t, tt.expectedFullyPaid, updated.FullyPaid)

			assert.Equal(t, 1, fact.StudentID)
			assert.Equal(t, tt.expectedRemaining, fact.Remaining.String())
			assert.Equal(t, tt.expectedFullyPaid, fact.FullyPaid)
		})
	}
}

func TestApplyPaymentAccumulates(t *testing.T) {
	account := newAccount("500.00", "0.00")
	amount := money.MustParse("150.00")

	var err error
	for i := 0; i < 3; i++ {
		account, _, err = ApplyPayment(1, account, amount)
		assert.NoError(t, err)
	}

	assert.Equal(t, "450.00", account.Paid.String())
	assert.Equal(t, "50.00", account.Remaining.String())
	assert.False(t, account.FullyPaid)

	account, _, err = ApplyPayment(1, account, money.MustParse("60.00"))
	assert.NoError(t, err)
	assert.Equal(t, "510.00", account.Paid.String())
	assert.Equal(t, "0.00", account.Remaining.String())
	assert.True(t, account.FullyPaid)
}

// Replaying an identical payment is not deduplicated: paid doubles. This
// locks in a documented limitation rather than an accident.
func TestApplyPaymentReplayDoubleCounts(t *testing.T) {
	account := newAccount("500.00", "0.00")
	amount := money.MustParse("200.00")

	account, _, err := ApplyPayment(1, account, amount)
	assert.NoError(t, err)
	account, _, err = ApplyPayment(1, account, amount)
	assert.NoError(t, err)

	assert.Equal(t, "400.00", account.Paid.String())
}

func TestReassess(t *testing.T) {
	account := domain.FeeAccount{
		TotalFee: money.MustParse("300.00"),
		Paid:     money.MustParse("300.00"),
	}
	account = Reassess(account)
	assert.True(t, account.FullyPaid)
	assert.Equal(t, "0.00", account.Remaining.String())

	account.TotalFee = money.MustParse("400.00")
	account = Reassess(account)
	assert.False(t, account.FullyPaid)
	assert.Equal(t, "100.00", account.Remaining.String())
}

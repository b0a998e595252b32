// Package feeservice holds the fee ledger computations. They are pure
// functions over account values; loading and storing the account is the
// caller's concern.
package feeservice

import (
	"fmt"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/pkg/money"
)

// ApplyPayment adds amount to the account's paid total and recomputes the
// derived balance fields. It returns the updated account together with the
// FeeUpdated fact for downstream consumers.
//
// There is no payment-event deduplication here: applying the same amount
// twice double-counts it, and not replaying an event is the caller's job.
func ApplyPayment(studentID int, account domain.FeeAccount, amount money.Money) (domain.FeeAccount, domain.FeeUpdated, error) {
	if !amount.IsPositive() {
		return account, domain.FeeUpdated{}, fmt.Errorf("%w: payment amount must be positive, got %s", money.ErrInvalidAmount, amount)
	}

	account.Paid = account.Paid.Add(amount)
	account = Reassess(account)

	return account, fact(studentID, account), nil
}

// Reassess recomputes Remaining and FullyPaid from TotalFee and Paid.
// Every mutation of either field must go through it so the derived state
// never drifts. Overpayment clamps Remaining at zero; the excess is not
// tracked as a credit.
func Reassess(account domain.FeeAccount) domain.FeeAccount {
	account.Remaining = account.TotalFee.SubFloor(account.Paid)
	account.FullyPaid = account.Remaining.IsZero()
	return account
}

func fact(studentID int, account domain.FeeAccount) domain.FeeUpdated {
	return domain.FeeUpdated{
		StudentID: studentID,
		Remaining: account.Remaining,
		FullyPaid: account.FullyPaid,
	}
}

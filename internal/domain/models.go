package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/shulepay/shulepay/pkg/money"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	FullName     string    `db:"full_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// ChannelKind tags the payment channel variant set on students, teachers
// and courses.
type ChannelKind string

const (
	ChannelNone        ChannelKind = ""
	ChannelMobileMoney ChannelKind = "mobile_money"
	ChannelBank        ChannelKind = "bank"
)

type PaymentChannel struct {
	Kind ChannelKind `db:"channel_kind"`

	// mobile money
	PayBillNumber string `db:"paybill_number"`
	AccountName   string `db:"account_name"`
	PhoneNumber   string `db:"phone_number"`

	// bank
	BankCode      string `db:"bank_code"`
	AccountNumber string `db:"bank_account_number"`
}

// FeeAccount is the per-student running tuition balance. Remaining and
// FullyPaid are derived and must be recomputed on every mutation of
// TotalFee or Paid.
type FeeAccount struct {
	TotalFee  money.Money `db:"total_fee"`
	Paid      money.Money `db:"fees_paid"`
	Remaining money.Money `db:"remaining_fee"`
	FullyPaid bool        `db:"fee_status"`
}

type Student struct {
	ID       int            `db:"id"`
	UserID   int            `db:"user_id"`
	FullName string         `db:"full_name"`
	Fees     FeeAccount
	Channel  PaymentChannel
}

// PayrollRecord carries the per-teacher gross-to-net computation.
// TaxDeduction and NetSalary are derived and recomputed in full whenever
// GrossRate or LoanDeduction changes.
type PayrollRecord struct {
	GrossRate     money.Money `db:"gross_rate"`
	LoanDeduction money.Money `db:"loan_deduction"`
	TaxDeduction  money.Money `db:"tax_deduction"`
	NetSalary     money.Money `db:"net_salary"`
}

type Teacher struct {
	ID       int            `db:"id"`
	UserID   int            `db:"user_id"`
	FullName string         `db:"full_name"`
	Payroll  PayrollRecord
	Channel  PaymentChannel
}

type Course struct {
	ID      int            `db:"id"`
	Title   string         `db:"title"`
	Price   money.Money    `db:"price"`
	Channel PaymentChannel
}

type Payment struct {
	ID            int         `db:"id"`
	StudentID     int         `db:"student_id"`
	CourseID      int         `db:"course_id"`
	Amount        money.Money `db:"amount"`
	ReceiptNumber string      `db:"receipt_number"`
	CreatedAt     time.Time   `db:"created_at"`
}

// PaymentEvent is the ephemeral input to reconciliation. EventID exists
// for tracing only: events are not deduplicated, so replaying one
// double-counts.
type PaymentEvent struct {
	EventID     uuid.UUID
	PayerUserID int
	CourseID    int
	Amount      money.Money
	At          time.Time
}

// FeeUpdated is the fact emitted by the fee ledger after a payment lands.
type FeeUpdated struct {
	StudentID int
	Remaining money.Money
	FullyPaid bool
}

const (
	NotifyEmail = "email"
	NotifySMS   = "sms"
)

type Notification struct {
	Channel     string
	RecipientID int
	Subject     string
	Body        string
}

// ReconciliationResult reports a completed reconciliation run. Warnings
// carry non-fatal notification problems; they never fail the run.
type ReconciliationResult struct {
	Student           *Student
	ReceiptNumber     string
	Fact              FeeUpdated
	PayrollRecomputed bool
	Warnings          []string
}

package dto

import "time"

type CreatePaymentRequestDTO struct {
	CourseID int    `json:"course_id" example:"3"`
	Amount   string `json:"amount" example:"150.00"`
}

type CreatePaymentResponseDTO struct {
	ReceiptNumber     string   `json:"receipt_number" example:"350390646099"`
	Remaining         string   `json:"remaining" example:"90.00"`
	FullyPaid         bool     `json:"fully_paid" example:"false"`
	PayrollRecomputed bool     `json:"payroll_recomputed" example:"false"`
	Warnings          []string `json:"warnings,omitempty"`
}

type GetPaymentsResponseDTO struct {
	ReceiptNumber string    `json:"receipt_number" example:"350390646099"`
	CourseID      int       `json:"course_id" example:"3"`
	Amount        string    `json:"amount" example:"150.00"`
	ProcessedAt   time.Time `json:"processed_at" example:"2024-05-10T12:00:00Z"`
}

type FeesResponseDTO struct {
	TotalFee  string `json:"total_fee" example:"450.00"`
	Paid      string `json:"paid" example:"300.00"`
	Remaining string `json:"remaining" example:"150.00"`
	FullyPaid bool   `json:"fully_paid" example:"false"`
}

type AssignFeeRequestDTO struct {
	TotalFee string `json:"total_fee" example:"600.00"`
}

type InstructionsResponseDTO struct {
	Instructions string `json:"instructions" example:"Pay via M-PESA Pay Bill 522533, account name Asha Mwangi."`
}

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/dto"
	"github.com/shulepay/shulepay/internal/service/reconcileservice"
	"github.com/shulepay/shulepay/pkg/auth"
	"github.com/shulepay/shulepay/pkg/money"
	"github.com/shulepay/shulepay/pkg/utils"
)

type Service interface {
	ProcessPayment(ctx context.Context, event domain.PaymentEvent) (*domain.ReconciliationResult, error)
	AssignFee(ctx context.Context, studentID int, totalFee money.Money) (*domain.Student, error)
	GetFees(ctx context.Context, userID int) (*domain.Student, error)
	GetPayments(ctx context.Context, userID int) ([]domain.Payment, error)
	Instructions(ctx context.Context, userID, courseID int) (string, error)
}

type PaymentsHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
	}
}

// CreatePayment godoc
//
//	@Summary		Submit a fee payment
//	@Description	Apply a payment to the authenticated student's fee account and run reconciliation
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment request payload"
//	@Success		200		{object}	dto.CreatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Student or course not found"
//	@Failure		422		{object}	utils.Response	"Invalid payment amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment amount")
		return
	}

	event := domain.PaymentEvent{
		EventID:     uuid.New(),
		PayerUserID: userID,
		CourseID:    req.CourseID,
		Amount:      amount,
		At:          time.Now(),
	}
	result, err := h.paymentService.ProcessPayment(r.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, money.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment amount")
		case errors.Is(err, reconcileservice.ErrStudentNotFound),
			errors.Is(err, reconcileservice.ErrCourseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreatePaymentResponseDTO{
		ReceiptNumber:     result.ReceiptNumber,
		Remaining:         result.Fact.Remaining.String(),
		FullyPaid:         result.Fact.FullyPaid,
		PayrollRecomputed: result.PayrollRecomputed,
		Warnings:          result.Warnings,
	})
}

// GetPayments godoc
//
//	@Summary		Get payment history
//	@Description	Get the authenticated student's payments sorted by most recent first
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetPaymentsResponseDTO	"Payment history"
//	@Success		204	{object}	utils.Response				"No payments found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Student not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentsHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payments, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		if errors.Is(err, reconcileservice.ErrStudentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payments not found")
		return
	}

	response := make([]dto.GetPaymentsResponseDTO, len(payments))
	for i, p := range payments {
		response[i] = dto.GetPaymentsResponseDTO{
			ReceiptNumber: p.ReceiptNumber,
			CourseID:      p.CourseID,
			Amount:        p.Amount.String(),
			ProcessedAt:   p.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetFees godoc
//
//	@Summary		Get fee account
//	@Description	Get the authenticated student's fee account balance
//	@Tags			Fees
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.FeesResponseDTO	"Current fee account"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"Student not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/students/fees [get]
func (h *PaymentsHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	student, err := h.paymentService.GetFees(r.Context(), userID)
	if err != nil {
		if errors.Is(err, reconcileservice.ErrStudentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FeesResponseDTO{
		TotalFee:  student.Fees.TotalFee.String(),
		Paid:      student.Fees.Paid.String(),
		Remaining: student.Fees.Remaining.String(),
		FullyPaid: student.Fees.FullyPaid,
	})
}

// AssignFee godoc
//
//	@Summary		Assign a student's total fee
//	@Description	Set the total tuition fee for a student and reassess the balance. Admin only.
//	@Tags			Fees
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Student ID"
//	@Param			request	body		dto.AssignFeeRequestDTO	true	"Fee assignment payload"
//	@Success		200		{object}	dto.FeesResponseDTO		"Reassessed fee account"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Forbidden"
//	@Failure		404		{object}	utils.Response			"Student not found"
//	@Failure		422		{object}	utils.Response			"Invalid fee amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/students/{id}/fees [put]
func (h *PaymentsHandler) AssignFee(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	var req dto.AssignFeeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	totalFee, err := money.Parse(req.TotalFee)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid fee amount")
		return
	}

	student, err := h.paymentService.AssignFee(r.Context(), studentID, totalFee)
	if err != nil {
		if errors.Is(err, reconcileservice.ErrStudentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FeesResponseDTO{
		TotalFee:  student.Fees.TotalFee.String(),
		Paid:      student.Fees.Paid.String(),
		Remaining: student.Fees.Remaining.String(),
		FullyPaid: student.Fees.FullyPaid,
	})
}

// GetInstructions godoc
//
//	@Summary		Get payment instructions
//	@Description	Render the payment channel instructions for a course
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			course_id	query		int	true	"Course ID"
//	@Success		200			{object}	dto.InstructionsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid course id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Student or course not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/instructions [get]
func (h *PaymentsHandler) GetInstructions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	courseID, err := strconv.Atoi(r.URL.Query().Get("course_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}

	instructions, err := h.paymentService.Instructions(r.Context(), userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, reconcileservice.ErrStudentNotFound),
			errors.Is(err, reconcileservice.ErrCourseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.InstructionsResponseDTO{
		Instructions: instructions,
	})
}

package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/dto"
	"github.com/shulepay/shulepay/internal/service/payrollservice"
	"github.com/shulepay/shulepay/pkg/auth"
	"github.com/shulepay/shulepay/pkg/money"
	"github.com/shulepay/shulepay/pkg/utils"
)

type Service interface {
	SetPayroll(ctx context.Context, userID int, grossRate, loanDeduction money.Money) (*domain.Teacher, error)
	GetPayroll(ctx context.Context, userID int) (*domain.Teacher, error)
}

type PayrollHandler struct {
	payrollService Service
}

func New(payrollService Service) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// GetPayroll godoc
//
//	@Summary		Get payroll record
//	@Description	Get the authenticated teacher's payroll record
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PayrollResponseDTO	"Current payroll record"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Teacher not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/teachers/payroll [get]
func (h *PayrollHandler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	teacher, err := h.payrollService.GetPayroll(r.Context(), userID)
	if err != nil {
		if errors.Is(err, payrollservice.ErrTeacherNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payrollResponse(teacher))
}

// SetPayroll godoc
//
//	@Summary		Set payroll inputs
//	@Description	Set the authenticated teacher's gross rate and loan deduction; tax deduction and net salary are derived
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetPayrollRequestDTO	true	"Payroll payload"
//	@Success		200		{object}	dto.PayrollResponseDTO		"Recomputed payroll record"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Teacher not found"
//	@Failure		422		{object}	utils.Response				"Invalid amounts"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/teachers/payroll [put]
func (h *PayrollHandler) SetPayroll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SetPayrollRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	grossRate, err := money.Parse(req.GrossRate)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid gross rate")
		return
	}
	loanDeduction, err := money.Parse(req.LoanDeduction)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid loan deduction")
		return
	}

	teacher, err := h.payrollService.SetPayroll(r.Context(), userID, grossRate, loanDeduction)
	if err != nil {
		switch {
		case errors.Is(err, payrollservice.ErrTeacherNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, payrollservice.ErrDeductionsExceedGross):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payrollResponse(teacher))
}

func payrollResponse(teacher *domain.Teacher) dto.PayrollResponseDTO {
	return dto.PayrollResponseDTO{
		GrossRate:     teacher.Payroll.GrossRate.String(),
		LoanDeduction: teacher.Payroll.LoanDeduction.String(),
		TaxDeduction:  teacher.Payroll.TaxDeduction.String(),
		NetSalary:     teacher.Payroll.NetSalary.String(),
	}
}

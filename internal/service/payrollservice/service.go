package payrollservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/pkg/money"
)

var ErrTeacherNotFound = errors.New("no teacher linked to user")

type TeacherRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Teacher, error)
	UpdatePayroll(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
}

type Service struct {
	teacherRepo TeacherRepo
	rates       Rates
}

func NewService(teacherRepo TeacherRepo, rates Rates) *Service {
	return &Service{teacherRepo: teacherRepo, rates: rates}
}

// SetPayroll stores a teacher's gross rate and loan deduction and derives
// the rest of the record from them.
func (s *Service) SetPayroll(ctx context.Context, userID int, grossRate, loanDeduction money.Money) (*domain.Teacher, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get teacher", zap.Error(err))
		return nil, err
	}
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}

	teacher.Payroll.GrossRate = grossRate
	teacher.Payroll.LoanDeduction = loanDeduction

	payroll, err := Recompute(teacher.Payroll, s.rates)
	if err != nil {
		return nil, err
	}
	teacher.Payroll = payroll

	updated, err := s.teacherRepo.UpdatePayroll(ctx, teacher)
	if err != nil {
		zap.L().Error("failed to update payroll", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payroll updated",
		zap.Int("teacherID", updated.ID),
		zap.String("grossRate", payroll.GrossRate.String()),
		zap.String("netSalary", payroll.NetSalary.String()),
	)
	return updated, nil
}

// GetPayroll returns the payroll record of the teacher linked to the user.
func (s *Service) GetPayroll(ctx context.Context, userID int) (*domain.Teacher, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get teacher", zap.Error(err))
		return nil, err
	}
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}
	return teacher, nil
}

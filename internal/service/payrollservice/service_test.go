package payrollservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/pkg/money"
)

func testRates() Rates {
	return Rates{
		Tax:        decimal.RequireFromString("0.30"),
		HealthLevy: decimal.RequireFromString("0.02"),
		Pension:    decimal.RequireFromString("0.06"),
	}
}

func TestService_SetPayroll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		grossRate     string
		loanDeduction string
		prepareMock   func(teacherRepo *MockTeacherRepo)
		wantNet       string
		wantErr       error
	}{
		{
			name:          "derives deductions and net salary",
			grossRate:     "30000.00",
			loanDeduction: "2000.00",
			prepareMock: func(teacherRepo *MockTeacherRepo) {
				teacherRepo.EXPECT().GetByUserID(ctx, 42).Return(&domain.Teacher{ID: 2, UserID: 42}, nil)
				teacherRepo.EXPECT().UpdatePayroll(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
						assert.True(t, teacher.Payroll.TaxDeduction.Equal(money.MustParse("13400.00")))
						return teacher, nil
					})
			},
			wantNet: "16600.00",
		},
		{
			name:          "deductions exceeding gross are rejected",
			grossRate:     "1000.00",
			loanDeduction: "900.00",
			prepareMock: func(teacherRepo *MockTeacherRepo) {
				teacherRepo.EXPECT().GetByUserID(ctx, 42).Return(&domain.Teacher{ID: 2, UserID: 42}, nil)
			},
			wantErr: ErrDeductionsExceedGross,
		},
		{
			name:          "no teacher linked to user",
			grossRate:     "30000.00",
			loanDeduction: "0.00",
			prepareMock: func(teacherRepo *MockTeacherRepo) {
				teacherRepo.EXPECT().GetByUserID(ctx, 42).Return(nil, nil)
			},
			wantErr: ErrTeacherNotFound,
		},
		{
			name:          "store failure",
			grossRate:     "30000.00",
			loanDeduction: "0.00",
			prepareMock: func(teacherRepo *MockTeacherRepo) {
				teacherRepo.EXPECT().GetByUserID(ctx, 42).Return(&domain.Teacher{ID: 2, UserID: 42}, nil)
				teacherRepo.EXPECT().UpdatePayroll(ctx, gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)
			teacherRepo := NewMockTeacherRepo(ctrl)
			tt.prepareMock(teacherRepo)

			service := NewService(teacherRepo, testRates())
			teacher, err := service.SetPayroll(ctx, 42, money.MustParse(tt.grossRate), money.MustParse(tt.loanDeduction))
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrDeductionsExceedGross) || errors.Is(tt.wantErr, ErrTeacherNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNet, teacher.Payroll.NetSalary.String())
		})
	}
}

func TestService_GetPayroll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	teacherRepo := NewMockTeacherRepo(ctrl)
	service := NewService(teacherRepo, testRates())

	want := &domain.Teacher{ID: 2, UserID: 42, Payroll: domain.PayrollRecord{NetSalary: money.MustParse("16600.00")}}
	teacherRepo.EXPECT().GetByUserID(ctx, 42).Return(want, nil)

	got, err := service.GetPayroll(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	teacherRepo.EXPECT().GetByUserID(ctx, 99).Return(nil, nil)
	_, err = service.GetPayroll(ctx, 99)
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

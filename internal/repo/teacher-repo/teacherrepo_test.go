package teacherrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/pg"
	"github.com/shulepay/shulepay/pkg/money"
)

var teacherCols = []string{
	"id", "user_id", "full_name",
	"gross_rate", "loan_deduction", "tax_deduction", "net_salary",
	"channel_kind", "paybill_number", "account_name", "phone_number", "bank_code", "bank_account_number",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func teacherRow() *pgxmock.Rows {
	return pgxmock.NewRows(teacherCols).
		AddRow(2, 42, "Juma Otieno",
			"30000.00", "2000.00", "13400.00", "16600.00",
			domain.ChannelBank, "", "", "", "68", "0450291827334")
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:   "Existing link returns teacher",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(`FROM teachers\s+WHERE user_id = \$1`).
					WithArgs(42).
					WillReturnRows(teacherRow())
			},
			found: true,
		},
		{
			name:   "No teacher linked returns nil without error",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(`FROM teachers\s+WHERE user_id = \$1`).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(`FROM teachers\s+WHERE user_id = \$1`).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			teacher, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, teacher)
				assert.Equal(t, 2, teacher.ID)
				assert.True(t, teacher.Payroll.NetSalary.Equal(money.MustParse("16600.00")))
				assert.Equal(t, "68", teacher.Channel.BankCode)
			} else {
				assert.Nil(t, teacher)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	teacher := &domain.Teacher{UserID: 42, FullName: "Juma Otieno"}

	rows := pgxmock.NewRows(teacherCols).
		AddRow(2, 42, "Juma Otieno",
			"0.00", "0.00", "0.00", "0.00",
			domain.ChannelNone, "", "", "", "", "")
	mock.ExpectQuery(`INSERT INTO teachers`).
		WithArgs(42, "Juma Otieno",
			teacher.Payroll.GrossRate, teacher.Payroll.LoanDeduction,
			teacher.Payroll.TaxDeduction, teacher.Payroll.NetSalary).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), teacher)
	assert.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePayroll(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	teacher := &domain.Teacher{
		ID: 2,
		Payroll: domain.PayrollRecord{
			GrossRate:     money.MustParse("30000.00"),
			LoanDeduction: money.MustParse("2000.00"),
			TaxDeduction:  money.MustParse("13400.00"),
			NetSalary:     money.MustParse("16600.00"),
		},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Stores the recomputed record",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				mock.ExpectQuery(`UPDATE teachers\s+SET gross_rate = \$1`).
					WithArgs(teacher.Payroll.GrossRate, teacher.Payroll.LoanDeduction,
						teacher.Payroll.TaxDeduction, teacher.Payroll.NetSalary, 2).
					WillReturnRows(teacherRow())
			},
		},
		{
			name: "Update failure rolls back",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				mock.ExpectQuery(`UPDATE teachers\s+SET gross_rate = \$1`).
					WithArgs(teacher.Payroll.GrossRate, teacher.Payroll.LoanDeduction,
						teacher.Payroll.TaxDeduction, teacher.Payroll.NetSalary, 2).
					WillReturnError(errors.New("update failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdatePayroll(context.Background(), teacher)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.True(t, updated.Payroll.NetSalary.Equal(money.MustParse("16600.00")))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

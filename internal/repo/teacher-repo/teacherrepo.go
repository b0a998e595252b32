package teacherrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/pg"
	"go.uber.org/zap"
)

const teacherColumns = `
        id, user_id, full_name,
        gross_rate, loan_deduction, tax_deduction, net_salary,
        channel_kind, paybill_number, account_name, phone_number, bank_code, bank_account_number
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanTeacher(row pgx.Row) (*domain.Teacher, error) {
	var t domain.Teacher
	err := row.Scan(
		&t.ID, &t.UserID, &t.FullName,
		&t.Payroll.GrossRate, &t.Payroll.LoanDeduction, &t.Payroll.TaxDeduction, &t.Payroll.NetSalary,
		&t.Channel.Kind, &t.Channel.PayBillNumber, &t.Channel.AccountName,
		&t.Channel.PhoneNumber, &t.Channel.BankCode, &t.Channel.AccountNumber,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByUserID returns (nil, nil) when no teacher is linked to the user.
// Reconciliation treats that as a recognized, continuable state.
func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Teacher, error) {
	query := `
        SELECT ` + teacherColumns + `
        FROM teachers
        WHERE user_id = $1
    `
	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get teacher by user id", zap.Error(err))
		return nil, err
	}
	return teacher, nil
}

func (r *Repository) Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	query := `
        INSERT INTO teachers (user_id, full_name, gross_rate, loan_deduction, tax_deduction, net_salary)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + teacherColumns + `
    `
	created, err := scanTeacher(r.db.QueryRow(ctx, query,
		teacher.UserID, teacher.FullName,
		teacher.Payroll.GrossRate, teacher.Payroll.LoanDeduction, teacher.Payroll.TaxDeduction, teacher.Payroll.NetSalary,
	))
	if err != nil {
		zap.L().Error("failed to create teacher", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdatePayroll(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	var updated *domain.Teacher
	query := `
		UPDATE teachers
		SET gross_rate = $1, loan_deduction = $2, tax_deduction = $3, net_salary = $4
		WHERE id = $5
		RETURNING ` + teacherColumns + `
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanTeacher(r.db.QueryRow(ctx, query,
			teacher.Payroll.GrossRate, teacher.Payroll.LoanDeduction,
			teacher.Payroll.TaxDeduction, teacher.Payroll.NetSalary,
			teacher.ID,
		))
		if err != nil {
			zap.L().Error("failed to update teacher payroll", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

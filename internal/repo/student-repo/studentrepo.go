package studentrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/pg"
	"go.uber.org/zap"
)

const studentColumns = `
        id, user_id, full_name,
        total_fee, fees_paid, remaining_fee, fee_status,
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

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	err := row.Scan(
		&s.ID, &s.UserID, &s.FullName,
		&s.Fees.TotalFee, &s.Fees.Paid, &s.Fees.Remaining, &s.Fees.FullyPaid,
		&s.Channel.Kind, &s.Channel.PayBillNumber, &s.Channel.AccountName,
		&s.Channel.PhoneNumber, &s.Channel.BankCode, &s.Channel.AccountNumber,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Student, error) {
	query := `
        SELECT ` + studentColumns + `
        FROM students
        WHERE user_id = $1
    `
	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get student by user id", zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Student, error) {
	query := `
        SELECT ` + studentColumns + `
        FROM students
        WHERE id = $1
    `
	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get student by id", zap.Error(err))
		return nil, err
	}
	return student, nil
}

// GetByIDForUpdate reads the student row with a row lock. The caller must
// hold a transaction on the context, otherwise the lock ends with the
// statement.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Student, error) {
	query := `
        SELECT ` + studentColumns + `
        FROM students
        WHERE id = $1
        FOR UPDATE
    `
	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get student for update", zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (r *Repository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	query := `
        INSERT INTO students (user_id, full_name, total_fee, fees_paid, remaining_fee, fee_status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + studentColumns + `
    `
	created, err := scanStudent(r.db.QueryRow(ctx, query,
		student.UserID, student.FullName,
		student.Fees.TotalFee, student.Fees.Paid, student.Fees.Remaining, student.Fees.FullyPaid,
	))
	if err != nil {
		zap.L().Error("failed to create student", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateFees stores the full fee account; the derived columns are written
// exactly as computed, never patched in SQL.
func (r *Repository) UpdateFees(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	var updated *domain.Student
	query := `
		UPDATE students
		SET total_fee = $1, fees_paid = $2, remaining_fee = $3, fee_status = $4
		WHERE id = $5
		RETURNING ` + studentColumns + `
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanStudent(r.db.QueryRow(ctx, query,
			student.Fees.TotalFee, student.Fees.Paid, student.Fees.Remaining, student.Fees.FullyPaid,
			student.ID,
		))
		if err != nil {
			zap.L().Error("failed to update student fees", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

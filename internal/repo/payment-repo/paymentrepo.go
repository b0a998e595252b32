package paymentrepo

import (
	"context"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (student_id, course_id, amount, receipt_number)
        VALUES ($1, $2, $3, $4)
        RETURNING id, student_id, course_id, amount, receipt_number, created_at
    `
	row := r.db.QueryRow(ctx, query, payment.StudentID, payment.CourseID, payment.Amount, payment.ReceiptNumber)
	var created domain.Payment
	err := row.Scan(&created.ID, &created.StudentID, &created.CourseID, &created.Amount, &created.ReceiptNumber, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create payment record", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetByStudentID(ctx context.Context, studentID int) ([]domain.Payment, error) {
	query := `
        SELECT id, student_id, course_id, amount, receipt_number, created_at
        FROM payments
        WHERE student_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.CourseID, &p.Amount, &p.ReceiptNumber, &p.CreatedAt); err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate payment rows", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

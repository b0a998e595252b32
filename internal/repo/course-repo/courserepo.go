package courserepo

import (
	"context"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	query := `
        SELECT id, title, price,
               channel_kind, paybill_number, account_name, phone_number, bank_code, bank_account_number
        FROM courses
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var c domain.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Price,
		&c.Channel.Kind, &c.Channel.PayBillNumber, &c.Channel.AccountName,
		&c.Channel.PhoneNumber, &c.Channel.BankCode, &c.Channel.AccountNumber,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get course by id", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

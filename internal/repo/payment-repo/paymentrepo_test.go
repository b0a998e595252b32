package paymentrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/pkg/money"
)

var paymentCols = []string{"id", "student_id", "course_id", "amount", "receipt_number", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payment := &domain.Payment{
		StudentID:     7,
		CourseID:      3,
		Amount:        money.MustParse("150.00"),
		ReceiptNumber: "350390646099",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Records the payment",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentCols).
					AddRow(1, 7, 3, "150.00", "350390646099", now)
				mock.ExpectQuery(`INSERT INTO payments`).
					WithArgs(7, 3, payment.Amount, "350390646099").
					WillReturnRows(rows)
			},
		},
		{
			name: "Insert failure",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO payments`).
					WithArgs(7, 3, payment.Amount, "350390646099").
					WillReturnError(errors.New("insert failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), payment)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
				assert.True(t, created.Amount.Equal(money.MustParse("150.00")))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByStudentID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "Returns payments newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentCols).
					AddRow(2, 7, 3, "150.00", "350390646099", now).
					AddRow(1, 7, 3, "300.00", "79927398713", now.Add(-time.Hour))
				mock.ExpectQuery(`FROM payments\s+WHERE student_id = \$1\s+ORDER BY created_at DESC`).
					WithArgs(7).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "No payments returns empty",
			mockSetup: func() {
				mock.ExpectQuery(`FROM payments\s+WHERE student_id = \$1\s+ORDER BY created_at DESC`).
					WithArgs(7).
					WillReturnRows(pgxmock.NewRows(paymentCols))
			},
		},
		{
			name: "Query failure",
			mockSetup: func() {
				mock.ExpectQuery(`FROM payments\s+WHERE student_id = \$1\s+ORDER BY created_at DESC`).
					WithArgs(7).
					WillReturnError(errors.New("query failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payments, err := repo.GetByStudentID(context.Background(), 7)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, payments, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

package userrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/shulepay/shulepay/internal/domain"
)

var userColumns = []string{"id", "login", "password_hash", "role", "full_name", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing login returns user",
			login: "asha",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "asha", "hashedpassword", "student", "Asha Mwangi", now)
				mock.ExpectQuery(`FROM users\s+WHERE login = \$1`).
					WithArgs("asha").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "asha", PasswordHash: "hashedpassword", Role: "student", FullName: "Asha Mwangi", CreatedAt: now},
		},
		{
			name:  "Unknown login returns nil",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(`FROM users\s+WHERE login = \$1`).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "Database error",
			login: "asha",
			mockSetup: func() {
				mock.ExpectQuery(`FROM users\s+WHERE login = \$1`).
					WithArgs("asha").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(userColumns).
		AddRow(1, "asha", "hashedpassword", "student", "Asha Mwangi", now)
	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "asha", user.Login)

	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	user, err = repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Creates and returns the stored user",
			user: &domain.User{Login: "asha", PasswordHash: "hashedpassword", Role: "student", FullName: "Asha Mwangi"},
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "asha", "hashedpassword", "student", "Asha Mwangi", now)
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("asha", "hashedpassword", "student", "Asha Mwangi").
					WillReturnRows(rows)
			},
		},
		{
			name: "Insert failure",
			user: &domain.User{Login: "asha", PasswordHash: "hashedpassword", Role: "student", FullName: "Asha Mwangi"},
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("asha", "hashedpassword", "student", "Asha Mwangi").
					WillReturnError(errors.New("insert failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
				assert.Equal(t, tt.user.Login, created.Login)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

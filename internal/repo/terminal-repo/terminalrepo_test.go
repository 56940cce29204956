package terminalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/restobonus/loyalty/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Terminal
	}{
		{
			name:  "Known terminal",
			login: "till-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "restaurant_id", "login", "secret_hash", "created_at"}).
					AddRow(3, 7, "till-1", "$2a$10$hash", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, restaurant_id, login, secret_hash, created_at FROM terminals WHERE login = $1`)).
					WithArgs("till-1").
					WillReturnRows(rows)
			},
			result: &domain.Terminal{ID: 3, RestaurantID: 7, Login: "till-1", SecretHash: "$2a$10$hash", CreatedAt: createdAt},
		},
		{
			name:  "Unknown terminal returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, restaurant_id, login, secret_hash, created_at FROM terminals WHERE login = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "till-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, restaurant_id, login, secret_hash, created_at FROM terminals WHERE login = $1`)).
					WithArgs("till-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			terminal, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, terminal)
		})
	}
}

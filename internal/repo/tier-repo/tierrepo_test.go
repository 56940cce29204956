package tierrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_ListByRestaurant(t *testing.T) {
	repo, mock := NewMock(t)
	silverMax := 5000

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Tier
	}{
		{
			name: "Returns tiers in position order",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "restaurant_id", "name", "min_points", "max_points", "discount_percent", "position"}).
					AddRow(1, 7, "BRONZE", 0, &silverMax, 5.0, 0).
					AddRow(2, 7, "SILVER", 5000, nil, 10.0, 1)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, restaurant_id, name, min_points, max_points, discount_percent, position FROM tiers WHERE restaurant_id = $1 ORDER BY position ASC`)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: []domain.Tier{
				{ID: 1, RestaurantID: 7, Name: "BRONZE", MinPoints: 0, MaxPoints: &silverMax, DiscountPercent: 5, Position: 0},
				{ID: 2, RestaurantID: 7, Name: "SILVER", MinPoints: 5000, DiscountPercent: 10, Position: 1},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, restaurant_id, name, min_points, max_points, discount_percent, position FROM tiers WHERE restaurant_id = $1 ORDER BY position ASC`)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tiers, err := repo.ListByRestaurant(context.Background(), 7)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, tiers)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, tiers)
			}
		})
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	maxPoints := 1000

	tests := []struct {
		name      string
		tier      *domain.Tier
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Inserts or updates by (restaurant, position)",
			tier: &domain.Tier{RestaurantID: 7, Name: "BRONZE", MinPoints: 0, MaxPoints: &maxPoints, DiscountPercent: 5, Position: 0},
			mockSetup: func() {
				mock.ExpectExec(`INSERT INTO tiers (.+) ON CONFLICT \(restaurant_id, position\)`).
					WithArgs(7, "BRONZE", 0, &maxPoints, 5.0, 0).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			tier: &domain.Tier{RestaurantID: 7, Name: "BRONZE", Position: 0, DiscountPercent: 5},
			mockSetup: func() {
				mock.ExpectExec(`INSERT INTO tiers (.+) ON CONFLICT \(restaurant_id, position\)`).
					WithArgs(7, "BRONZE", 0, nil, 5.0, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Upsert(context.Background(), tt.tier)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_AppendEvent(t *testing.T) {
	repo, mock := NewMock(t)
	txnID := 11

	tests := []struct {
		name      string
		event     *domain.TierEvent
		mockSetup func()
		expectErr bool
	}{
		{
			name:  "Upgrade event with source transaction",
			event: &domain.TierEvent{AccountID: 1, OldTierID: 1, NewTierID: 2, Reason: "sale", TransactionID: &txnID},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tier_events (account_id, old_tier_id, new_tier_id, reason, transaction_id) VALUES ($1, $2, $3, $4, $5)`)).
					WithArgs(1, 1, 2, "sale", &txnID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:  "Reconcile event without transaction",
			event: &domain.TierEvent{AccountID: 1, OldTierID: 2, NewTierID: 1, Reason: "reconcile"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tier_events (account_id, old_tier_id, new_tier_id, reason, transaction_id) VALUES ($1, $2, $3, $4, $5)`)).
					WithArgs(1, 2, 1, "reconcile", (*int)(nil)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:  "Database error",
			event: &domain.TierEvent{AccountID: 1, OldTierID: 1, NewTierID: 2, Reason: "sale"},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tier_events (account_id, old_tier_id, new_tier_id, reason, transaction_id) VALUES ($1, $2, $3, $4, $5)`)).
					WithArgs(1, 1, 2, "sale", nil).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AppendEvent(context.Background(), tt.event)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/pg"
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

const accountColumns = `id, guest_id, restaurant_id, balance_points, tier_id, visits_count, last_visit_at, active_card_id, is_blocked, block_reason, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID, &account.GuestID, &account.RestaurantID, &account.Balance,
		&account.TierID, &account.VisitsCount, &account.LastVisitAt, &account.ActiveCardID,
		&account.IsBlocked, &account.BlockReason, &account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetByID(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate locks the account row for the rest of the surrounding
// transaction. This is what serializes concurrent sales on one account.
func (r *Repository) GetForUpdate(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (guest_id, restaurant_id, balance_points, tier_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + accountColumns + `
    `
	created, err := scanAccount(r.db.QueryRow(ctx, query, account.GuestID, account.RestaurantID, account.Balance, account.TierID))
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID, newBalance int) error {
	query := `
        UPDATE accounts
        SET balance_points = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, newBalance, accountID); err != nil {
		zap.L().Error("can't update balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetTier(ctx context.Context, accountID, tierID int) error {
	query := `
        UPDATE accounts
        SET tier_id = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, tierID, accountID); err != nil {
		zap.L().Error("can't update tier", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetActiveCard(ctx context.Context, accountID, cardID int) error {
	query := `
        UPDATE accounts
        SET active_card_id = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, cardID, accountID); err != nil {
		zap.L().Error("can't set active card", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RegisterVisit(ctx context.Context, accountID int, at time.Time) error {
	query := `
        UPDATE accounts
        SET visits_count = visits_count + 1, last_visit_at = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, at, accountID); err != nil {
		zap.L().Error("can't register visit", zap.Error(err))
		return err
	}
	return nil
}

// FindMistiered returns accounts whose stored tier range no longer contains
// their balance, for the background reconciler.
func (r *Repository) FindMistiered(ctx context.Context, limit uint32) ([]domain.Account, error) {
	query := `
        SELECT a.id, a.guest_id, a.restaurant_id, a.balance_points, a.tier_id, a.visits_count, a.last_visit_at, a.active_card_id, a.is_blocked, a.block_reason, a.created_at
        FROM accounts a
        JOIN tiers t ON t.id = a.tier_id
        WHERE a.balance_points < t.min_points
           OR (t.max_points IS NOT NULL AND a.balance_points >= t.max_points)
        ORDER BY a.id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get accounts for reconcile", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(
			&account.ID, &account.GuestID, &account.RestaurantID, &account.Balance,
			&account.TierID, &account.VisitsCount, &account.LastVisitAt, &account.ActiveCardID,
			&account.IsBlocked, &account.BlockReason, &account.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

package transactionrepo

import (
	"context"
	"errors"

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

const transactionColumns = `id, account_id, restaurant_id, type, amount_rubles, base_points, bonus_points, old_balance, new_balance, old_tier_id, new_tier_id, discount_percent, cheque_number, cashier_id, idempotency_key, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.ID, &txn.AccountID, &txn.RestaurantID, &txn.Type, &txn.Amount,
		&txn.BasePoints, &txn.BonusPoints, &txn.OldBalance, &txn.NewBalance,
		&txn.OldTierID, &txn.NewTierID, &txn.DiscountPercent,
		&txn.ChequeNumber, &txn.CashierID, &txn.IdempotencyKey, &txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Append inserts a ledger row. Rows are never updated or deleted.
func (r *Repository) Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (account_id, restaurant_id, type, amount_rubles, base_points, bonus_points, old_balance, new_balance, old_tier_id, new_tier_id, discount_percent, cheque_number, cashier_id, idempotency_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + transactionColumns + `
    `
	created, err := scanTransaction(r.db.QueryRow(ctx, query,
		txn.AccountID, txn.RestaurantID, txn.Type, txn.Amount,
		txn.BasePoints, txn.BonusPoints, txn.OldBalance, txn.NewBalance,
		txn.OldTierID, txn.NewTierID, txn.DiscountPercent,
		txn.ChequeNumber, txn.CashierID, txn.IdempotencyKey,
	))
	if err != nil {
		zap.L().Error("can't append transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) AppendDetail(ctx context.Context, detail *domain.BalanceDetail) error {
	query := `
        INSERT INTO balance_detail (account_id, transaction_id, base_points, bonus_points, old_balance, new_balance)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		detail.AccountID, detail.TransactionID,
		detail.BasePoints, detail.BonusPoints,
		detail.OldBalance, detail.NewBalance,
	)
	if err != nil {
		zap.L().Error("can't append balance detail", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, restaurantID int, key string) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE restaurant_id = $1 AND idempotency_key = $2
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, restaurantID, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction by idempotency key", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// ListByAccount returns the account's ledger in commit order, newest first.
func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE account_id = $1
        ORDER BY id DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID, &txn.AccountID, &txn.RestaurantID, &txn.Type, &txn.Amount,
			&txn.BasePoints, &txn.BonusPoints, &txn.OldBalance, &txn.NewBalance,
			&txn.OldTierID, &txn.NewTierID, &txn.DiscountPercent,
			&txn.ChequeNumber, &txn.CashierID, &txn.IdempotencyKey, &txn.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

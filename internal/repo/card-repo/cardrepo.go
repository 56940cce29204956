package cardrepo

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

const cardColumns = `id, account_id, restaurant_id, qr_token, six_digit_code, is_active, created_at, invalidated_at, invalidated_by_transaction_id`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.ID, &card.AccountID, &card.RestaurantID, &card.QRToken, &card.Code,
		&card.IsActive, &card.CreatedAt, &card.InvalidatedAt, &card.InvalidatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *Repository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
        INSERT INTO cards (account_id, restaurant_id, qr_token, six_digit_code, is_active)
        VALUES ($1, $2, $3, $4, TRUE)
        RETURNING ` + cardColumns + `
    `
	created, err := scanCard(r.db.QueryRow(ctx, query, card.AccountID, card.RestaurantID, card.QRToken, card.Code))
	if err != nil {
		zap.L().Error("can't create card", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Invalidate retires a card. Invalidating an already retired card is a no-op,
// so retries inside a rolled-back sale can't fail here.
func (r *Repository) Invalidate(ctx context.Context, cardID, transactionID int) error {
	query := `
        UPDATE cards
        SET is_active = FALSE, invalidated_at = now(), invalidated_by_transaction_id = $1
        WHERE id = $2 AND is_active
    `
	if _, err := r.db.Exec(ctx, query, transactionID, cardID); err != nil {
		zap.L().Error("can't invalidate card", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindActiveByAccount(ctx context.Context, accountID int) (*domain.Card, error) {
	query := `
        SELECT ` + cardColumns + `
        FROM cards
        WHERE account_id = $1 AND is_active
    `
	card, err := scanCard(r.db.QueryRow(ctx, query, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) FindActiveByCode(ctx context.Context, restaurantID int, code string) (*domain.Card, error) {
	query := `
        SELECT ` + cardColumns + `
        FROM cards
        WHERE restaurant_id = $1 AND six_digit_code = $2 AND is_active
    `
	card, err := scanCard(r.db.QueryRow(ctx, query, restaurantID, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find card by code", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) FindActiveByToken(ctx context.Context, restaurantID int, token string) (*domain.Card, error) {
	query := `
        SELECT ` + cardColumns + `
        FROM cards
        WHERE restaurant_id = $1 AND qr_token = $2 AND is_active
    `
	card, err := scanCard(r.db.QueryRow(ctx, query, restaurantID, token))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find card by token", zap.Error(err))
		return nil, err
	}
	return card, nil
}

package terminalrepo

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

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Terminal, error) {
	query := `
        SELECT id, restaurant_id, login, secret_hash, created_at
        FROM terminals
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)
	var terminal domain.Terminal
	err := row.Scan(&terminal.ID, &terminal.RestaurantID, &terminal.Login, &terminal.SecretHash, &terminal.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find terminal", zap.Error(err))
		return nil, err
	}
	return &terminal, nil
}

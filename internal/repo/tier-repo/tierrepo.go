package tierrepo

import (
	"context"

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

// ListByRestaurant returns the restaurant's tier table ordered by position.
func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.Tier, error) {
	query := `
        SELECT id, restaurant_id, name, min_points, max_points, discount_percent, position
        FROM tiers
        WHERE restaurant_id = $1
        ORDER BY position ASC
    `
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		zap.L().Error("can't get tiers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.Tier
	for rows.Next() {
		var tier domain.Tier
		err := rows.Scan(&tier.ID, &tier.RestaurantID, &tier.Name, &tier.MinPoints, &tier.MaxPoints, &tier.DiscountPercent, &tier.Position)
		if err != nil {
			zap.L().Error("can't scan tier row", zap.Error(err))
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// Upsert syncs one tier definition from the config file into the table,
// keyed by (restaurant, position).
func (r *Repository) Upsert(ctx context.Context, tier *domain.Tier) error {
	query := `
        INSERT INTO tiers (restaurant_id, name, min_points, max_points, discount_percent, position)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (restaurant_id, position)
        DO UPDATE SET name = $2, min_points = $3, max_points = $4, discount_percent = $5
    `
	_, err := r.db.Exec(ctx, query, tier.RestaurantID, tier.Name, tier.MinPoints, tier.MaxPoints, tier.DiscountPercent, tier.Position)
	if err != nil {
		zap.L().Error("can't upsert tier", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendEvent(ctx context.Context, event *domain.TierEvent) error {
	query := `
        INSERT INTO tier_events (account_id, old_tier_id, new_tier_id, reason, transaction_id)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, event.AccountID, event.OldTierID, event.NewTierID, event.Reason, event.TransactionID)
	if err != nil {
		zap.L().Error("can't append tier event", zap.Error(err))
		return err
	}
	return nil
}

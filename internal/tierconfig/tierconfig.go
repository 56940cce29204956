package tierconfig

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/service/saleservice"
	"github.com/restobonus/loyalty/internal/service/tierservice"
)

// File is the on-disk tier table. Tiers are listed in ascending order per
// restaurant; position comes from list order, not from the file.
type File struct {
	Restaurants []Restaurant `yaml:"restaurants"`
}

type Restaurant struct {
	RestaurantID int    `yaml:"restaurant_id"`
	Tiers        []Tier `yaml:"tiers"`
}

type Tier struct {
	Name            string  `yaml:"name"`
	MinPoints       int     `yaml:"min_points"`
	MaxPoints       *int    `yaml:"max_points"`
	DiscountPercent float64 `yaml:"discount_percent"`
}

// Load reads and validates the tier file. Every restaurant's tiers must
// partition [0, inf) with no gaps, or the whole file is rejected.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read tier file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("can't parse tier file: %w", err)
	}

	resolver := tierservice.NewResolver()
	for _, restaurant := range file.Restaurants {
		if err := resolver.Validate(restaurant.domainTiers()); err != nil {
			return nil, fmt.Errorf("restaurant %d: %w", restaurant.RestaurantID, err)
		}
	}
	return &file, nil
}

// Sync pushes the file into the tiers table, keyed by (restaurant, position).
func (f *File) Sync(ctx context.Context, tierRepo saleservice.TierRepo) error {
	for _, restaurant := range f.Restaurants {
		for _, tier := range restaurant.domainTiers() {
			tier := tier
			if err := tierRepo.Upsert(ctx, &tier); err != nil {
				return fmt.Errorf("restaurant %d tier %q: %w", restaurant.RestaurantID, tier.Name, err)
			}
		}
		zap.L().Info("Tiers synced", zap.Int("restaurant_id", restaurant.RestaurantID), zap.Int("count", len(restaurant.Tiers)))
	}
	return nil
}

func (r Restaurant) domainTiers() []domain.Tier {
	tiers := make([]domain.Tier, 0, len(r.Tiers))
	for i, tier := range r.Tiers {
		tiers = append(tiers, domain.Tier{
			RestaurantID:    r.RestaurantID,
			Name:            tier.Name,
			MinPoints:       tier.MinPoints,
			MaxPoints:       tier.MaxPoints,
			DiscountPercent: tier.DiscountPercent,
			Position:        i,
		})
	}
	return tiers
}

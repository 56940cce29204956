package tierservice

import (
	"errors"
	"fmt"
	"sort"

	"github.com/restobonus/loyalty/internal/domain"
)

var ErrInvalidTierConfig = errors.New("invalid tier configuration")

// Resolver maps a point balance to the tier whose [min, max) range contains
// it. A gap or overlap in the configured ranges is reported, never papered
// over: tier tables are maintained outside the engine, and a miss means the
// table is broken.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(tiers []domain.Tier, points int) (*domain.Tier, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: negative balance %d", ErrInvalidTierConfig, points)
	}
	for i := range tiers {
		tier := tiers[i]
		if points < tier.MinPoints {
			continue
		}
		if tier.MaxPoints == nil || points < *tier.MaxPoints {
			return &tier, nil
		}
	}
	return nil, fmt.Errorf("%w: no tier covers %d points", ErrInvalidTierConfig, points)
}

// Validate checks that the tier set partitions [0, inf): sorted by position,
// starting at 0, each range ending exactly where the next begins, the last one
// unbounded.
func (r *Resolver) Validate(tiers []domain.Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: empty tier set", ErrInvalidTierConfig)
	}

	sorted := make([]domain.Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	if sorted[0].MinPoints != 0 {
		return fmt.Errorf("%w: first tier %q starts at %d, want 0", ErrInvalidTierConfig, sorted[0].Name, sorted[0].MinPoints)
	}
	for i := 0; i < len(sorted)-1; i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.MaxPoints == nil {
			return fmt.Errorf("%w: tier %q is unbounded but not last", ErrInvalidTierConfig, cur.Name)
		}
		if *cur.MaxPoints != next.MinPoints {
			return fmt.Errorf("%w: tier %q ends at %d but %q starts at %d", ErrInvalidTierConfig, cur.Name, *cur.MaxPoints, next.Name, next.MinPoints)
		}
		if next.MinPoints <= cur.MinPoints {
			return fmt.Errorf("%w: positions not increasing with min points", ErrInvalidTierConfig)
		}
	}
	if last := sorted[len(sorted)-1]; last.MaxPoints != nil {
		return fmt.Errorf("%w: last tier %q must be unbounded", ErrInvalidTierConfig, last.Name)
	}
	return nil
}

// ByID finds the tier carrying the given id in a loaded tier set.
func (r *Resolver) ByID(tiers []domain.Tier, tierID int) (*domain.Tier, error) {
	for i := range tiers {
		if tiers[i].ID == tierID {
			return &tiers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown tier id %d", ErrInvalidTierConfig, tierID)
}

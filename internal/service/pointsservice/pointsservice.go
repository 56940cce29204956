package pointsservice

import (
	"errors"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidDiscount = errors.New("discount percent must be within [0, 100]")
)

// Calculator prices a purchase into loyalty points. Both base and bonus
// points use floor rounding: the floor result is what ends up on the ledger,
// so the policy must never drift between call sites.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate returns floor(amount) base points plus
// floor(amount*discountPercent/100) bonus points.
func (c *Calculator) Calculate(amountRubles, discountPercent float64) (domain.Points, error) {
	if amountRubles < 0 {
		return domain.Points{}, ErrNegativeAmount
	}
	if discountPercent < 0 || discountPercent > 100 {
		return domain.Points{}, ErrInvalidDiscount
	}

	amount := decimal.NewFromFloat(amountRubles)
	discount := decimal.NewFromFloat(discountPercent)

	base := int(amount.Floor().IntPart())
	bonus := int(amount.Mul(discount).Div(decimal.NewFromInt(100)).Floor().IntPart())

	return domain.Points{
		Base:  base,
		Bonus: bonus,
		Total: base + bonus,
	}, nil
}

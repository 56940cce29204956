package pointsservice

import (
	"testing"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name          string
		amount        float64
		discount      float64
		expected      domain.Points
		expectedError error
	}{
		{
			name:     "Base tier purchase",
			amount:   1000,
			discount: 5,
			expected: domain.Points{Base: 1000, Bonus: 50, Total: 1050},
		},
		{
			name:     "VIP tier purchase",
			amount:   1000,
			discount: 25,
			expected: domain.Points{Base: 1000, Bonus: 250, Total: 1250},
		},
		{
			name:     "Fractional amount floors base points",
			amount:   999.99,
			discount: 0,
			expected: domain.Points{Base: 999, Bonus: 0, Total: 999},
		},
		{
			// floor(333 * 0.075) = floor(24.975) = 24, not 25
			name:     "Fractional bonus floors, never rounds",
			amount:   333,
			discount: 7.5,
			expected: domain.Points{Base: 333, Bonus: 24, Total: 357},
		},
		{
			name:     "Zero amount",
			amount:   0,
			discount: 10,
			expected: domain.Points{Base: 0, Bonus: 0, Total: 0},
		},
		{
			name:     "Full discount",
			amount:   250.5,
			discount: 100,
			expected: domain.Points{Base: 250, Bonus: 250, Total: 500},
		},
		{
			name:          "Negative amount",
			amount:        -1,
			discount:      5,
			expectedError: ErrNegativeAmount,
		},
		{
			name:          "Negative discount",
			amount:        100,
			discount:      -0.1,
			expectedError: ErrInvalidDiscount,
		},
		{
			name:          "Discount above 100",
			amount:        100,
			discount:      100.1,
			expectedError: ErrInvalidDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := calc.Calculate(tt.amount, tt.discount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, points)
			assert.Equal(t, points.Base+points.Bonus, points.Total)
		})
	}
}

package domain

import "time"

const (
	SaleTransaction       string = "SALE"
	RedemptionTransaction string = "REDEMPTION"
)

type Account struct {
	ID           int        `db:"id"`
	GuestID      int        `db:"guest_id"`
	RestaurantID int        `db:"restaurant_id"`
	Balance      int        `db:"balance_points"`
	TierID       int        `db:"tier_id"`
	VisitsCount  int        `db:"visits_count"`
	LastVisitAt  *time.Time `db:"last_visit_at"`
	ActiveCardID *int       `db:"active_card_id"`
	IsBlocked    bool       `db:"is_blocked"`
	BlockReason  string     `db:"block_reason"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Transaction struct {
	ID              int       `db:"id"`
	AccountID       int       `db:"account_id"`
	RestaurantID    int       `db:"restaurant_id"`
	Type            string    `db:"type"`
	Amount          *float64  `db:"amount_rubles"`
	BasePoints      int       `db:"base_points"`
	BonusPoints     int       `db:"bonus_points"`
	OldBalance      int       `db:"old_balance"`
	NewBalance      int       `db:"new_balance"`
	OldTierID       int       `db:"old_tier_id"`
	NewTierID       int       `db:"new_tier_id"`
	DiscountPercent float64   `db:"discount_percent"`
	ChequeNumber    string    `db:"cheque_number"`
	CashierID       string    `db:"cashier_id"`
	IdempotencyKey  *string   `db:"idempotency_key"`
	CreatedAt       time.Time `db:"created_at"`
}

type Tier struct {
	ID              int     `db:"id"`
	RestaurantID    int     `db:"restaurant_id"`
	Name            string  `db:"name"`
	MinPoints       int     `db:"min_points"`
	MaxPoints       *int    `db:"max_points"`
	DiscountPercent float64 `db:"discount_percent"`
	Position        int     `db:"position"`
}

type TierEvent struct {
	ID            int       `db:"id"`
	AccountID     int       `db:"account_id"`
	OldTierID     int       `db:"old_tier_id"`
	NewTierID     int       `db:"new_tier_id"`
	Reason        string    `db:"reason"`
	TransactionID *int      `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type Card struct {
	ID            int        `db:"id"`
	AccountID     int        `db:"account_id"`
	RestaurantID  int        `db:"restaurant_id"`
	QRToken       string     `db:"qr_token"`
	Code          string     `db:"six_digit_code"`
	IsActive      bool       `db:"is_active"`
	CreatedAt     time.Time  `db:"created_at"`
	InvalidatedAt *time.Time `db:"invalidated_at"`
	InvalidatedBy *int       `db:"invalidated_by_transaction_id"`
}

type BalanceDetail struct {
	ID            int       `db:"id"`
	AccountID     int       `db:"account_id"`
	TransactionID int       `db:"transaction_id"`
	BasePoints    int       `db:"base_points"`
	BonusPoints   int       `db:"bonus_points"`
	OldBalance    int       `db:"old_balance"`
	NewBalance    int       `db:"new_balance"`
	CreatedAt     time.Time `db:"created_at"`
}

type Terminal struct {
	ID           int       `db:"id"`
	RestaurantID int       `db:"restaurant_id"`
	Login        string    `db:"login"`
	SecretHash   string    `db:"secret_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Points is the result of pricing one purchase.
type Points struct {
	Base  int
	Bonus int
	Total int
}

// SaleResult is returned to the POS after a committed sale or redemption.
type SaleResult struct {
	TransactionID int       `json:"transaction_id"`
	BasePoints    int       `json:"base_points"`
	BonusPoints   int       `json:"bonus_points"`
	TotalPoints   int       `json:"total_points"`
	OldBalance    int       `json:"old_balance"`
	NewBalance    int       `json:"new_balance"`
	OldTierID     int       `json:"old_tier_id"`
	NewTierID     int       `json:"new_tier_id"`
	TierUpgraded  bool      `json:"tier_upgraded"`
	QRToken       string    `json:"qr_token"`
	Code          string    `json:"six_digit_code"`
	ProcessedAt   time.Time `json:"processed_at"`
}

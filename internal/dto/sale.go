package dto

type SaleRequestDTO struct {
	AccountID      int     `json:"account_id" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	ChequeNumber   string  `json:"cheque_number"`
	CashierID      string  `json:"cashier_id"`
	IdempotencyKey string  `json:"idempotency_key,omitempty"`
}

type RedeemRequestDTO struct {
	AccountID    int    `json:"account_id" validate:"required"`
	Points       int    `json:"points" validate:"required,gt=0"`
	ChequeNumber string `json:"cheque_number"`
	CashierID    string `json:"cashier_id"`
}

type SaleResponseDTO struct {
	TransactionID int    `json:"transaction_id"`
	BasePoints    int    `json:"base_points"`
	BonusPoints   int    `json:"bonus_points"`
	TotalPoints   int    `json:"total_points"`
	OldBalance    int    `json:"old_balance"`
	NewBalance    int    `json:"new_balance"`
	OldTierID     int    `json:"old_tier_id"`
	NewTierID     int    `json:"new_tier_id"`
	TierUpgraded  bool   `json:"tier_upgraded"`
	QRToken       string `json:"qr_token"`
	Code          string `json:"six_digit_code"`
	ProcessedAt   string `json:"processed_at"`
}

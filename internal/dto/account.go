package dto

type EnrollRequestDTO struct {
	GuestID int `json:"guest_id" validate:"required"`
}

type EnrollResponseDTO struct {
	AccountID int    `json:"account_id"`
	TierID    int    `json:"tier_id"`
	QRToken   string `json:"qr_token"`
	Code      string `json:"six_digit_code"`
}

type AccountResponseDTO struct {
	ID          int    `json:"id"`
	GuestID     int    `json:"guest_id"`
	Balance     int    `json:"balance"`
	TierID      int    `json:"tier_id"`
	VisitsCount int    `json:"visits_count"`
	LastVisitAt string `json:"last_visit_at,omitempty"`
	IsBlocked   bool   `json:"is_blocked"`
}

type TransactionResponseDTO struct {
	ID           int      `json:"id"`
	Type         string   `json:"type"`
	Amount       *float64 `json:"amount,omitempty"`
	BasePoints   int      `json:"base_points"`
	BonusPoints  int      `json:"bonus_points"`
	OldBalance   int      `json:"old_balance"`
	NewBalance   int      `json:"new_balance"`
	ChequeNumber string   `json:"cheque_number,omitempty"`
	ProcessedAt  string   `json:"processed_at"`
}

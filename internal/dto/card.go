package dto

type ValidateCardRequestDTO struct {
	QRToken string `json:"qr_token,omitempty"`
	Code    string `json:"six_digit_code,omitempty"`
}

type ValidateCardResponseDTO struct {
	Valid           bool    `json:"valid"`
	Reason          string  `json:"reason,omitempty"`
	AccountID       int     `json:"account_id,omitempty"`
	Balance         int     `json:"balance,omitempty"`
	TierName        string  `json:"tier_name,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

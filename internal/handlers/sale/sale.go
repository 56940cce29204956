package sale

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/dto"
	saleservice "github.com/restobonus/loyalty/internal/service/saleservice"
	"github.com/restobonus/loyalty/pkg/auth"
	"github.com/restobonus/loyalty/pkg/utils"
)

type Service interface {
	ProcessSale(ctx context.Context, req saleservice.SaleRequest) (*domain.SaleResult, error)
	ProcessRedemption(ctx context.Context, req saleservice.RedeemRequest) (*domain.SaleResult, error)
}

type SaleHandler struct {
	saleService Service
}

func New(saleService Service) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// ProcessSale godoc
//
//	@Summary		Process a sale
//	@Description	Record a purchase: accrue points, re-evaluate tier, rotate the card
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SaleRequestDTO	true	"Sale request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SaleResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401	{object}	utils.Response	"Terminal not authorized"
//	@Failure		403	{object}	utils.Response	"Account is blocked"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		409	{object}	utils.Response	"Idempotency key already used"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sale [post]
func (h *SaleHandler) ProcessSale(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.Context().Value(auth.RestaurantIDKey).(int)

	var req dto.SaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.saleService.ProcessSale(r.Context(), saleservice.SaleRequest{
		AccountID:      req.AccountID,
		RestaurantID:   restaurantID,
		Amount:         req.Amount,
		ChequeNumber:   req.ChequeNumber,
		CashierID:      req.CashierID,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSaleResponse(result))
}

// ProcessRedemption godoc
//
//	@Summary		Redeem points
//	@Description	Spend points for a discount on the current cheque
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.RedeemRequestDTO	true	"Redeem request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SaleResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or points"
//	@Failure		401	{object}	utils.Response	"Terminal not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		403	{object}	utils.Response	"Account is blocked"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/redeem [post]
func (h *SaleHandler) ProcessRedemption(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.Context().Value(auth.RestaurantIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.saleService.ProcessRedemption(r.Context(), saleservice.RedeemRequest{
		AccountID:    req.AccountID,
		RestaurantID: restaurantID,
		Points:       req.Points,
		ChequeNumber: req.ChequeNumber,
		CashierID:    req.CashierID,
	})
	if err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSaleResponse(result))
}

func respondWithSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, saleservice.ErrInvalidAmount),
		errors.Is(err, saleservice.ErrInvalidRedemption),
		errors.Is(err, saleservice.ErrInvalidIdempotencyKey):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, saleservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, saleservice.ErrAccountBlocked):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, saleservice.ErrDuplicateSale):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, saleservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSaleResponse(result *domain.SaleResult) dto.SaleResponseDTO {
	return dto.SaleResponseDTO{
		TransactionID: result.TransactionID,
		BasePoints:    result.BasePoints,
		BonusPoints:   result.BonusPoints,
		TotalPoints:   result.TotalPoints,
		OldBalance:    result.OldBalance,
		NewBalance:    result.NewBalance,
		OldTierID:     result.OldTierID,
		NewTierID:     result.NewTierID,
		TierUpgraded:  result.TierUpgraded,
		QRToken:       result.QRToken,
		Code:          result.Code,
		ProcessedAt:   result.ProcessedAt.Format(time.RFC3339),
	}
}

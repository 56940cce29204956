package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/dto"
	saleservice "github.com/restobonus/loyalty/internal/service/saleservice"
	"github.com/restobonus/loyalty/pkg/auth"
	"github.com/restobonus/loyalty/pkg/utils"
)

type Service interface {
	Enroll(ctx context.Context, guestID, restaurantID int) (*domain.Account, *domain.Card, error)
	GetAccount(ctx context.Context, restaurantID, accountID int) (*domain.Account, error)
	ListTransactions(ctx context.Context, restaurantID, accountID int) ([]domain.Transaction, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Enroll godoc
//
//	@Summary		Enroll a guest
//	@Description	Create a loyalty account for a guest at this restaurant and issue the first card
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.EnrollRequestDTO	true	"Enroll request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EnrollResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Terminal not authorized"
//	@Failure		409	{object}	utils.Response	"Guest already enrolled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.Context().Value(auth.RestaurantIDKey).(int)

	var req dto.EnrollRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GuestID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, card, err := h.accountService.Enroll(r.Context(), req.GuestID, restaurantID)
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, "Guest already enrolled")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.EnrollResponseDTO{
		AccountID: account.ID,
		TierID:    account.TierID,
		QRToken:   card.QRToken,
		Code:      card.Code,
	})
}

// GetAccount godoc
//
//	@Summary		Get account summary
//	@Description	Balance, tier and visit stats for one loyalty account
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid account id"
//	@Failure		401	{object}	utils.Response	"Terminal not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.Context().Value(auth.RestaurantIDKey).(int)

	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), restaurantID, accountID)
	if err != nil {
		if errors.Is(err, saleservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AccountResponseDTO{
		ID:          account.ID,
		GuestID:     account.GuestID,
		Balance:     account.Balance,
		TierID:      account.TierID,
		VisitsCount: account.VisitsCount,
		IsBlocked:   account.IsBlocked,
	}
	if account.LastVisitAt != nil {
		response.LastVisitAt = account.LastVisitAt.Format(time.RFC3339)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		Get account ledger
//	@Description	Transaction history for one account, newest first
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		204	{object}	utils.Response	"No transactions yet"
//	@Failure		400	{object}	utils.Response	"Invalid account id"
//	@Failure		401	{object}	utils.Response	"Terminal not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/transactions [get]
func (h *AccountHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.Context().Value(auth.RestaurantIDKey).(int)

	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	txns, err := h.accountService.ListTransactions(r.Context(), restaurantID, accountID)
	if err != nil {
		if errors.Is(err, saleservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions yet")
		return
	}

	var response []dto.TransactionResponseDTO
	for _, txn := range txns {
		response = append(response, dto.TransactionResponseDTO{
			ID:           txn.ID,
			Type:         txn.Type,
			Amount:       txn.Amount,
			BasePoints:   txn.BasePoints,
			BonusPoints:  txn.BonusPoints,
			OldBalance:   txn.OldBalance,
			NewBalance:   txn.NewBalance,
			ChequeNumber: txn.ChequeNumber,
			ProcessedAt:  txn.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

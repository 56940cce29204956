package cards

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/restobonus/loyalty/internal/dto"
	saleservice "github.com/restobonus/loyalty/internal/service/saleservice"
	"github.com/restobonus/loyalty/pkg/auth"
	"github.com/restobonus/loyalty/pkg/utils"
)

type Service interface {
	IdentifyCard(ctx context.Context, restaurantID int, qrToken, code string) (*saleservice.Identity, error)
}

type CardHandler struct {
	cardService Service
}

func New(cardService Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// ValidateCard godoc
//
//	@Summary		Validate a checkout credential
//	@Description	Resolve a QR token or six-digit code to the guest's account. An invalid credential is a 200 with valid=false, not an error.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ValidateCardRequestDTO	true	"Credential to validate"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ValidateCardResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Terminal not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/validate [post]
func (h *CardHandler) ValidateCard(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.Context().Value(auth.RestaurantIDKey).(int)

	var req dto.ValidateCardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := h.cardService.IdentifyCard(r.Context(), restaurantID, req.QRToken, req.Code)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ValidateCardResponseDTO{
		Valid:           identity.Valid,
		Reason:          identity.Reason,
		AccountID:       identity.AccountID,
		Balance:         identity.Balance,
		TierName:        identity.TierName,
		DiscountPercent: identity.DiscountPercent,
	})
}

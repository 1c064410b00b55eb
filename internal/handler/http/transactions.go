package http

import (
	"encoding/json"
	"net/http"

	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/internal/utils"
	"github.com/AVoropaev/go-money-keeper/models"
)

// createTransaction records a single transaction for the authenticated user.
// The owner is always taken from the request context; a user_id in the
// payload is ignored.
func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	var transaction models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.LedgerService.AddTransaction(ctx, userID, transaction); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to add transaction")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgFailedToAdd}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgTransactionAdded}, http.StatusOK)
}

// listTransactions returns every transaction owned by the authenticated
// user, in the order the entries were recorded. A user with no transactions
// receives an empty JSON array.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	transactions, err := h.services.LedgerService.ListTransactions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to fetch transactions")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgFailedToFetch}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

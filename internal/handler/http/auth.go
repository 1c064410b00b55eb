package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/internal/service"
	"github.com/AVoropaev/go-money-keeper/internal/store"
	"github.com/AVoropaev/go-money-keeper/internal/utils"
	"github.com/AVoropaev/go-money-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Str("username", credentials.Username).Msg("username already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgUserAlreadyExists}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgUserAlreadyExists}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalServerError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		// not-found and wrong-password are reported differently; clients
		// depend on the distinction
		switch {
		case errors.Is(err, store.ErrUserNotFound), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("username", credentials.Username).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgUserNotFound}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", credentials.Username).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidPassword}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalServerError}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

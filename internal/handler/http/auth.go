package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/service"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/utils"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// login authenticates by email and password and answers with a bearer token.
// An unknown email answers 404 with the legacy "Bad Request" message; a
// credential mismatch answers 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteJSON(w, models.MessageResponse{Msg: "Bad Request"}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			utils.WriteJSON(w, models.MessageResponse{Msg: "Bad email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user.Email)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK)
}

// signup registers a new account keyed by email and answers with a bearer
// token. A taken email answers 400 with the legacy error envelope.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Signup(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			utils.WriteJSON(w, models.ErrorResponse{Error: "User already exists"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registered.Email)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK)
}

// validToken reports whether the authenticated identity still maps to a
// stored user. A dangling identity answers 404 with is_logged=false.
func (h *Handler) validToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := identityEmail(w, r)
	if !ok {
		return
	}

	logged, err := h.services.AuthService.CheckToken(ctx, email)
	if err != nil {
		log.Err(err).Msg("token check ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !logged {
		utils.WriteJSON(w, models.ValidTokenResponse{Msg: "user does not exist", IsLogged: false}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ValidTokenResponse{IsLogged: true}, http.StatusOK)
}

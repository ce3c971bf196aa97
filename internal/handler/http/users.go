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

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.CatalogService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// The empty set is a 404 with a bare string body, not an empty list.
	if len(users) == 0 {
		utils.WriteJSON(w, "no users in the database", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: users}, http.StatusOK)
}

func (h *Handler) getOneUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.services.CatalogService.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is no user matching the ID provided"}, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("user lookup ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: user}, http.StatusOK)
}

func (h *Handler) addNewUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.CatalogService.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			utils.WriteJSON(w, models.ErrorResponse{Error: "User already exists"}, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("user creation ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "A new user has been added to the database"}, http.StatusOK)
}

// updateUser keeps the legacy contract: the lookup key is a display name
// users never had, so the not-found branch always answers, with status 200.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.UpdateUser(ctx, request); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "this user does not exist, you can't update it"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("user update ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, the user has been updated in the database"}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteByNameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.CatalogService.DeleteUserByName(ctx, request.Name)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("user deletion ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if deleted == 0 {
		utils.WriteJSON(w, models.MessageResponse{Msg: "there is nothing to delete"}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, its deleted"}, http.StatusOK)
}

func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deleted, err := h.services.CatalogService.DeleteAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("deleting all users ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if deleted == 0 {
		utils.WriteJSON(w, models.MessageResponse{Msg: "there are no users to delete"}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, all users have been deleted"}, http.StatusOK)
}

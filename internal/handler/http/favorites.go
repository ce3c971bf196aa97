package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/service"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/utils"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

func (h *Handler) getUserFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := identityEmail(w, r)
	if !ok {
		return
	}

	favorites, err := h.services.FavoriteService.ListForUser(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "This user does not exist"}, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("listing favorites ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(favorites) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Msg: "this user has no favorites yet"}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: favorites}, http.StatusOK)
}

// getFavoritesProtected serves the same list as getUserFavorites but keeps its
// own unknown-identity answer, a bare string body.
func (h *Handler) getFavoritesProtected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := identityEmail(w, r)
	if !ok {
		return
	}

	favorites, err := h.services.FavoriteService.ListForUser(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteJSON(w, "wrong authorization/restricted area", http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("listing favorites ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(favorites) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Msg: "this user has no favorites yet"}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: favorites}, http.StatusOK)
}

// favoriteMessages carries the per-route answer strings of the three add
// endpoints; casing varies between routes and is part of the contract.
type favoriteMessages struct {
	userMissing   string
	targetMissing string
	duplicate     string
}

func (h *Handler) addFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, models.TargetPlanet, favoriteMessages{
		userMissing:   "This user does not exist",
		targetMissing: "This planet does not exist",
		duplicate:     "this user already has this planet as a favorite",
	})
}

func (h *Handler) addFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, models.TargetCharacter, favoriteMessages{
		userMissing:   "this user does not exist",
		targetMissing: "this character does not exist",
		duplicate:     "this user already has this character as a favorite",
	})
}

func (h *Handler) addFavoriteStarship(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, models.TargetStarship, favoriteMessages{
		userMissing:   "This user does not exist",
		targetMissing: "This starship does not exist",
		duplicate:     "this user already has this starship as a favorite",
	})
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request, kind models.TargetKind, messages favoriteMessages) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := identityEmail(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	record, err := h.services.FavoriteService.Add(ctx, email, models.FavoriteTarget{Kind: kind, ID: id})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteJSON(w, models.MessageResponse{Msg: messages.userMissing}, http.StatusUnauthorized)
		case errors.Is(err, service.ErrTargetNotFound):
			utils.WriteJSON(w, models.MessageResponse{Msg: messages.targetMissing}, http.StatusUnauthorized)
		case errors.Is(err, service.ErrAlreadyFavorite):
			utils.WriteJSON(w, models.MessageResponse{Msg: messages.duplicate}, http.StatusOK)
		default:
			log.Err(err).Str("kind", string(kind)).Int64("id", id).Msg("adding favorite ended with error")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: record}, http.StatusOK)
}

// deleteFavoritePlanet takes the owning user id from the request body, not
// from a token, which is the legacy contract of this route.
func (h *Handler) deleteFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteFavoritePlanetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	target := models.FavoriteTarget{Kind: models.TargetPlanet, ID: request.PlanetsID}
	if err := h.services.FavoriteService.RemoveByTarget(ctx, request.UserID, target); err != nil {
		if errors.Is(err, service.ErrNothingToDelete) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is nothing to delete"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("deleting favorite planet ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, its deleted"}, http.StatusOK)
}

// deleteFavoriteCharacter takes both ids from the URL and performs no identity
// check, same as deleteFavoritePlanet.
func (h *Handler) deleteFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := idParam(w, r, "user_id")
	if !ok {
		return
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	target := models.FavoriteTarget{Kind: models.TargetCharacter, ID: id}
	if err := h.services.FavoriteService.RemoveByTarget(ctx, userID, target); err != nil {
		if errors.Is(err, service.ErrNothingToDelete) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is nothing to delete"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("deleting favorite character ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, its deleted"}, http.StatusOK)
}

func (h *Handler) deleteFavoriteByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := identityEmail(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.services.FavoriteService.RemoveByID(ctx, email, id); err != nil {
		// Every failure branch of this route still answers 200.
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteJSON(w, models.MessageResponse{Msg: "this user does not exist"}, http.StatusOK)
		case errors.Is(err, service.ErrFavoriteNotFound):
			utils.WriteJSON(w, models.MessageResponse{Msg: "this favorite does not exist"}, http.StatusOK)
		case errors.Is(err, service.ErrNothingToDelete):
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is nothing to delete"}, http.StatusOK)
		default:
			log.Err(err).Int64("id", id).Msg("deleting favorite ended with error")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, its deleted"}, http.StatusOK)
}

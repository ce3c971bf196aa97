package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/utils"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

func (h *Handler) getAllStarships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	starships, err := h.services.CatalogService.ListStarships(ctx)
	if err != nil {
		log.Err(err).Msg("listing starships ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(starships) == 0 {
		utils.WriteJSON(w, "no starships in the database", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: starships}, http.StatusOK)
}

func (h *Handler) getOneStarship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	starship, err := h.services.CatalogService.GetStarship(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is no starship matching the Name provided"}, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("starship lookup ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: starship}, http.StatusOK)
}

func (h *Handler) addNewStarship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateStarshipRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.CatalogService.CreateStarship(ctx, request); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "this starship is already included in the database"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("starship creation ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, a new starship has been added to the database"}, http.StatusOK)
}

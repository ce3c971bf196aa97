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

func (h *Handler) getAllPlanets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	planets, err := h.services.CatalogService.ListPlanets(ctx)
	if err != nil {
		log.Err(err).Msg("listing planets ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(planets) == 0 {
		utils.WriteJSON(w, "no planets in the database", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: planets}, http.StatusOK)
}

func (h *Handler) getOnePlanet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	planet, err := h.services.CatalogService.GetPlanet(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is no planet matching the Name provided"}, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("planet lookup ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: planet}, http.StatusOK)
}

func (h *Handler) addNewPlanet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var planet models.Planet
	if err := json.NewDecoder(r.Body).Decode(&planet); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.CatalogService.CreatePlanet(ctx, planet); err != nil {
		// Duplicates still answer 200 with a message, per the legacy contract.
		if errors.Is(err, store.ErrAlreadyExists) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "this planet is already included in the database"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("planet creation ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, a new planet has been added to the database"}, http.StatusOK)
}

func (h *Handler) updatePlanet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var request models.UpdatePlanetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.UpdatePlanet(ctx, id, request); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "this planet does not exist, you can't update it"}, http.StatusOK)
			return
		}
		log.Err(err).Int64("id", id).Msg("planet update ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, the planet has been updated in the database"}, http.StatusOK)
}

func (h *Handler) deletePlanet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteByNameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.CatalogService.DeletePlanetByName(ctx, request.Name)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("planet deletion ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if deleted == 0 {
		utils.WriteJSON(w, models.MessageResponse{Msg: "there is nothing to delete"}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, its deleted"}, http.StatusOK)
}

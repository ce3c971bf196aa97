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

func (h *Handler) getAllCharacters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	characters, err := h.services.CatalogService.ListCharacters(ctx)
	if err != nil {
		log.Err(err).Msg("listing characters ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(characters) == 0 {
		utils.WriteJSON(w, "no characters in the database", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", Results: characters}, http.StatusOK)
}

func (h *Handler) getOneCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	character, err := h.services.CatalogService.GetCharacter(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "there is no character matching the name provided"}, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("character lookup ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// This endpoint alone duplicates the record id at the top level.
	utils.WriteJSON(w, models.ResultsResponse{Msg: "ok", ID: &character.ID, Results: character}, http.StatusOK)
}

func (h *Handler) addNewCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var character models.Character
	if err := json.NewDecoder(r.Body).Decode(&character); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.CatalogService.CreateCharacter(ctx, character); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			utils.WriteJSON(w, models.MessageResponse{Msg: "this character is already included in the database"}, http.StatusOK)
			return
		}
		log.Err(err).Msg("character creation ended with error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "ok, a new character has been added to the database"}, http.StatusOK)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	log "github.com/sirupsen/logrus"
)

type createDeckRequest struct {
	DeckID      *int64  `json:"id_mazo"`
	Name        string  `json:"nombre"`
	Format      string  `json:"formato"`
	Description *string `json:"descripcion"`
	CreatorID   *int64  `json:"id_creador"`
}

func (h *Handler) CreateDeckHandler(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	if req.DeckID == nil || req.Name == "" || req.Format == "" {
		h.respondError(w, http.StatusBadRequest, "ID, nombre y formato son requeridos")
		return
	}

	deck := models.Deck{
		DeckID:      *req.DeckID,
		Name:        req.Name,
		Format:      req.Format,
		Description: req.Description,
	}

	id, err := h.decks.CreateDeck(r.Context(), deck, req.CreatorID)
	if err != nil {
		log.Errorf("Error al crear mazo: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, http.StatusOK, envelope{
		"success": true,
		"id_mazo": id,
		"message": "Mazo creado exitosamente",
	})
}

func (h *Handler) ListDecksHandler(w http.ResponseWriter, r *http.Request) {
	decks, err := h.decks.ListDecks(r.Context())
	if err != nil {
		log.Errorf("Error al obtener mazos: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, decks)
}

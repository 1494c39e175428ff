package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	log "github.com/sirupsen/logrus"
)

// FilterCardsHandler accepts any subset of the four card filters; an empty
// or absent body is a valid search returning the first rows by name.
func (h *Handler) FilterCardsHandler(w http.ResponseWriter, r *http.Request) {
	var filter models.CardFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	cards, err := h.cards.FilterCards(r.Context(), filter)
	if err != nil {
		log.Errorf("Error al filtrar cartas: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, cards)
}

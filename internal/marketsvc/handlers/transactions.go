package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	log "github.com/sirupsen/logrus"
)

type createTransactionRequest struct {
	RefMovimiento *int64 `json:"ref_movimiento"`
	Type          string `json:"tipo"`
	SenderID      *int64 `json:"id_emisor"`
	ReceiverID    *int64 `json:"id_receptor"`
	Quantity      *int   `json:"cantidad"`
}

func (h *Handler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	if req.RefMovimiento == nil || req.Type == "" || req.SenderID == nil ||
		req.ReceiverID == nil || req.Quantity == nil {
		h.respondError(w, http.StatusBadRequest, "Todos los campos son requeridos")
		return
	}

	tx := models.Transaction{
		RefMovimiento: *req.RefMovimiento,
		Type:          req.Type,
		SenderID:      *req.SenderID,
		ReceiverID:    *req.ReceiverID,
		Quantity:      *req.Quantity,
	}

	ref, err := h.txs.CreateTransaction(r.Context(), tx)
	if err != nil {
		log.Errorf("Error al crear transacción: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, http.StatusOK, envelope{
		"success":        true,
		"ref_movimiento": ref,
		"message":        "Transacción registrada exitosamente",
	})
}

func (h *Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txs.ListTransactions(r.Context())
	if err != nil {
		log.Errorf("Error al obtener transacciones: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, txs)
}

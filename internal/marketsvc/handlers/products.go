package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type createProductRequest struct {
	ProductID   *int64           `json:"id_productos"`
	Description string           `json:"descripcion"`
	Cost        *decimal.Decimal `json:"coste"`
	IsCard      bool             `json:"es_carta"`
}

func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	// Cost is a presence check, not a truthiness check: 0 is a valid cost.
	if req.ProductID == nil || req.Description == "" || req.Cost == nil {
		h.respondError(w, http.StatusBadRequest, "ID, descripción y coste son requeridos")
		return
	}

	product := models.Product{
		ProductID:   *req.ProductID,
		Description: req.Description,
		Cost:        *req.Cost,
		IsCard:      req.IsCard,
	}

	id, err := h.products.CreateProduct(r.Context(), product)
	if err != nil {
		log.Errorf("Error al crear producto: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, http.StatusOK, envelope{
		"success":      true,
		"id_productos": id,
		"message":      "Producto registrado exitosamente",
	})
}

func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		log.Errorf("Error al obtener productos: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, products)
}

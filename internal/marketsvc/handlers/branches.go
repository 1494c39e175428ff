package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	log "github.com/sirupsen/logrus"
)

type createBranchRequest struct {
	BranchID *int64  `json:"id_sucursal"`
	Country  string  `json:"pais"`
	City     string  `json:"ciudad"`
	Street   *string `json:"calle"`
	Phone    *string `json:"telefono"`
}

func (h *Handler) CreateBranchHandler(w http.ResponseWriter, r *http.Request) {
	var req createBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	if req.BranchID == nil || req.Country == "" || req.City == "" {
		h.respondError(w, http.StatusBadRequest, "ID, país y ciudad son requeridos")
		return
	}

	branch := models.Branch{
		BranchID: *req.BranchID,
		Country:  req.Country,
		City:     req.City,
		Street:   req.Street,
		Phone:    req.Phone,
	}

	id, err := h.branches.CreateBranch(r.Context(), branch)
	if err != nil {
		log.Errorf("Error al crear sucursal: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, http.StatusOK, envelope{
		"success":     true,
		"id_sucursal": id,
		"message":     "Sucursal creada exitosamente",
	})
}

func (h *Handler) ListBranchesHandler(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.ListBranches(r.Context())
	if err != nil {
		log.Errorf("Error al obtener sucursales: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, branches)
}

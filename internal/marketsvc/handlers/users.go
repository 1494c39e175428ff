package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	log "github.com/sirupsen/logrus"
)

type createUserRequest struct {
	UserID   *int64  `json:"id_usuario"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"tlf"`
	Country  *string `json:"pais"`
	City     *string `json:"ciudad"`
	Street   *string `json:"calle"`
}

func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	if req.UserID == nil || req.Username == "" || req.Email == "" {
		h.respondError(w, http.StatusBadRequest, "ID, username y email son requeridos")
		return
	}

	user := models.User{
		UserID:   *req.UserID,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Country:  req.Country,
		City:     req.City,
		Street:   req.Street,
	}

	id, err := h.users.CreateUser(r.Context(), user)
	if err != nil {
		log.Errorf("Error al crear usuario: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, http.StatusOK, envelope{
		"success":    true,
		"id_usuario": id,
		"message":    "Usuario creado exitosamente",
	})
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		log.Errorf("Error al obtener usuarios: %v", err)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, users)
}

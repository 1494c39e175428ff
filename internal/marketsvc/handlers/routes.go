package handlers

import (
	"net/http"

	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		r.Post("/usuarios", h.CreateUserHandler)
		r.Get("/usuarios", h.ListUsersHandler)

		r.Post("/sucursales", h.CreateBranchHandler)
		r.Get("/sucursales", h.ListBranchesHandler)

		r.Post("/productos", h.CreateProductHandler)
		r.Get("/productos", h.ListProductsHandler)

		r.Post("/mazos", h.CreateDeckHandler)
		r.Get("/mazos", h.ListDecksHandler)

		r.Post("/transacciones", h.CreateTransactionHandler)
		r.Get("/transacciones", h.ListTransactionsHandler)

		r.Post("/cartas/filtrar", h.FilterCardsHandler)

		// unmatched API routes answer with the envelope, not plain text
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			h.respondError(w, http.StatusNotFound, "Ruta no encontrada")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			h.respondError(w, http.StatusNotFound, "Ruta no encontrada")
		})
	})
}

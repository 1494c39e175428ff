package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
)

// Service interfaces consumed by the HTTP layer. The concrete
// implementations live in the service package.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type BranchService interface {
	CreateBranch(ctx context.Context, branch models.Branch) (int64, error)
	ListBranches(ctx context.Context) ([]models.Branch, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, product models.Product) (int64, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type DeckService interface {
	CreateDeck(ctx context.Context, deck models.Deck, creatorID *int64) (int64, error)
	ListDecks(ctx context.Context) ([]models.Deck, error)
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (int64, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

type CardService interface {
	FilterCards(ctx context.Context, f models.CardFilter) ([]models.CardDetail, error)
}

type Handler struct {
	users    UserService
	branches BranchService
	products ProductService
	decks    DeckService
	txs      TransactionService
	cards    CardService
}

func NewHandler(users UserService, branches BranchService, products ProductService,
	decks DeckService, txs TransactionService, cards CardService) *Handler {
	return &Handler{
		users:    users,
		branches: branches,
		products: products,
		decks:    decks,
		txs:      txs,
		cards:    cards,
	}
}

// envelope is the {success, data|error} wrapper every response uses.
type envelope map[string]any

func (h *Handler) respond(w http.ResponseWriter, code int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) respondError(w http.ResponseWriter, code int, msg string) {
	h.respond(w, code, envelope{"success": false, "error": msg})
}

func (h *Handler) respondData(w http.ResponseWriter, data any) {
	h.respond(w, http.StatusOK, envelope{"success": true, "data": data})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, envelope{
		"success":   true,
		"message":   "Servidor funcionando correctamente",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
)

type TransactionService struct {
	txStore *store.TransactionStore
}

func NewTransactionService(store *store.TransactionStore) *TransactionService {
	return &TransactionService{txStore: store}
}

// CreateTransaction assigns each movement a fresh token before insert.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx models.Transaction) (int64, error) {
	token := uuid.NewString()
	return s.txStore.CreateTransaction(ctx, tx, token)
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.txStore.ListTransactions(ctx)
}

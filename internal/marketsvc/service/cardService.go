package service

import (
	"context"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
)

type CardService struct {
	store *store.CardStore
}

func NewCardService(store *store.CardStore) *CardService {
	return &CardService{store: store}
}

func (s *CardService) FilterCards(ctx context.Context, f models.CardFilter) ([]models.CardDetail, error) {
	return s.store.FilterCards(ctx, f)
}

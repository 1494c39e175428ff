package service

import (
	"context"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
)

// defaultCreatorID is assigned when a deck arrives without a creator.
const defaultCreatorID = 1

type DeckService struct {
	deckStore *store.DeckStore
}

func NewDeckService(store *store.DeckStore) *DeckService {
	return &DeckService{deckStore: store}
}

func (s *DeckService) CreateDeck(ctx context.Context, deck models.Deck, creatorID *int64) (int64, error) {
	id := int64(defaultCreatorID)
	if creatorID != nil {
		id = *creatorID
	}
	return s.deckStore.CreateDeck(ctx, deck, id)
}

func (s *DeckService) ListDecks(ctx context.Context) ([]models.Deck, error) {
	return s.deckStore.ListDecks(ctx)
}

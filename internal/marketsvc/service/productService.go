package service

import (
	"context"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
)

type ProductService struct {
	productStore *store.ProductStore
}

func NewProductService(store *store.ProductStore) *ProductService {
	return &ProductService{productStore: store}
}

func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	return s.productStore.CreateProduct(ctx, product)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productStore.ListProducts(ctx)
}

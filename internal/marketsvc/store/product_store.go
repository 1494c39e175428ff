package store

import (
	"context"
	"fmt"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductStore struct {
	db *pgxpool.Pool
}

func NewProductStore(db *pgxpool.Pool) *ProductStore {
	return &ProductStore{db: db}
}

func (r *ProductStore) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	var productId int64

	query := `
        INSERT INTO productos (id_productos, descr_producto, coste_producto, es_carta)
        VALUES ($1, $2, $3, $4)
        RETURNING id_productos;
    `

	err := r.db.QueryRow(ctx, query,
		product.ProductID, product.Description, product.Cost, product.IsCard,
	).Scan(&productId)
	if err != nil {
		return 0, fmt.Errorf("could not create product: %w", err)
	}

	return productId, nil
}

func (r *ProductStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id_productos, descr_producto, coste_producto, es_carta
        FROM productos
        ORDER BY id_productos DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ProductID, &p.Description, &p.Cost, &p.IsCard)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

package store

import (
	"context"
	"fmt"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BranchStore struct {
	db *pgxpool.Pool
}

func NewBranchStore(db *pgxpool.Pool) *BranchStore {
	return &BranchStore{db: db}
}

func (r *BranchStore) CreateBranch(ctx context.Context, branch models.Branch) (int64, error) {
	var branchId int64

	query := `
        INSERT INTO sucursal (id_sucursal, pais, ciudad, calle, telefono)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id_sucursal;
    `

	err := r.db.QueryRow(ctx, query,
		branch.BranchID, branch.Country, branch.City, branch.Street, branch.Phone,
	).Scan(&branchId)
	if err != nil {
		return 0, fmt.Errorf("could not create branch: %w", err)
	}

	return branchId, nil
}

func (r *BranchStore) ListBranches(ctx context.Context) ([]models.Branch, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id_sucursal, pais, ciudad, calle, telefono
        FROM sucursal
        ORDER BY id_sucursal DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	branches := []models.Branch{}
	for rows.Next() {
		var b models.Branch
		err := rows.Scan(&b.BranchID, &b.Country, &b.City, &b.Street, &b.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

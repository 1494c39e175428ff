package store

import (
	"context"
	"fmt"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionStore struct {
	db *pgxpool.Pool
}

func NewTransactionStore(db *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{db: db}
}

func (r *TransactionStore) CreateTransaction(ctx context.Context, tx models.Transaction, token string) (int64, error) {
	var ref int64

	query := `
        INSERT INTO transaccion (ref_movimiento, tipo_transaccion, id_emisor, id_receptor,
                                 cantidad_productos, token_transaccion, fecha_transaccion)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING ref_movimiento;
    `

	err := r.db.QueryRow(ctx, query,
		tx.RefMovimiento, tx.Type, tx.SenderID, tx.ReceiverID, tx.Quantity, token,
	).Scan(&ref)
	if err != nil {
		return 0, fmt.Errorf("could not create transaction: %w", err)
	}

	return ref, nil
}

// ListTransactions joins the sender and receiver usernames; a missing user
// leaves the corresponding column null instead of dropping the row.
func (r *TransactionStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx, `
        SELECT t.ref_movimiento, t.tipo_transaccion, t.token_transaccion,
               t.fecha_transaccion, t.cantidad_productos,
               e.username AS emisor, r.username AS receptor
        FROM transaccion t
        LEFT JOIN usuario e ON t.id_emisor = e.id_usuario
        LEFT JOIN usuario r ON t.id_receptor = r.id_usuario
        ORDER BY t.fecha_transaccion DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.RefMovimiento,
			&t.Type,
			&t.Token,
			&t.Fecha,
			&t.Quantity,
			&t.Emisor,
			&t.Receptor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}

	return txs, rows.Err()
}

package store

import (
	"context"
	"fmt"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeckStore struct {
	db *pgxpool.Pool
}

func NewDeckStore(db *pgxpool.Pool) *DeckStore {
	return &DeckStore{db: db}
}

func (r *DeckStore) CreateDeck(ctx context.Context, deck models.Deck, creatorID int64) (int64, error) {
	var deckId int64

	query := `
        INSERT INTO mazo (id_mazo, nombre_mazo, formato_mazo, descripcion_mazo, id_creador, fecha_subida)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id_mazo;
    `

	err := r.db.QueryRow(ctx, query,
		deck.DeckID, deck.Name, deck.Format, deck.Description, creatorID,
	).Scan(&deckId)
	if err != nil {
		return 0, fmt.Errorf("could not create deck: %w", err)
	}

	return deckId, nil
}

// ListDecks joins the creator username; a missing creator leaves the
// creador column null instead of dropping the deck.
func (r *DeckStore) ListDecks(ctx context.Context) ([]models.Deck, error) {
	rows, err := r.db.Query(ctx, `
        SELECT m.id_mazo, m.nombre_mazo, m.formato_mazo, m.cant_cartas,
               m.descripcion_mazo, m.fecha_subida, m.likes, u.username AS creador
        FROM mazo m
        LEFT JOIN usuario u ON m.id_creador = u.id_usuario
        ORDER BY m.fecha_subida DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	decks := []models.Deck{}
	for rows.Next() {
		var d models.Deck
		err := rows.Scan(
			&d.DeckID,
			&d.Name,
			&d.Format,
			&d.CardCount,
			&d.Description,
			&d.FechaSubida,
			&d.Likes,
			&d.Creador,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, d)
	}

	return decks, rows.Err()
}

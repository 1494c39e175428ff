package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const cardFilterLimit = 50

type CardStore struct {
	db *pgxpool.Pool
}

func NewCardStore(db *pgxpool.Pool) *CardStore {
	return &CardStore{db: db}
}

// buildCardFilterQuery renders the card search query. Each non-empty filter
// appends one ILIKE predicate with its value bound as %value%; placeholder
// numbers follow the order predicates are appended, so any subset of the
// four filters yields a consistent query.
func buildCardFilterQuery(f models.CardFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
        SELECT id_juego, nombre_carta, habilidades, rareza, artista, tipo_principal
        FROM detalle_carta
        WHERE 1=1`)

	params := []any{}

	appendFilter := func(column, value string) {
		if value == "" {
			return
		}
		params = append(params, "%"+value+"%")
		fmt.Fprintf(&sb, " AND %s ILIKE $%d", column, len(params))
	}

	appendFilter("nombre_carta", f.Name)
	appendFilter("tipo_principal", f.Type)
	appendFilter("mana", f.Mana)
	appendFilter("rareza", f.Rarity)

	fmt.Fprintf(&sb, " ORDER BY nombre_carta LIMIT %d", cardFilterLimit)

	return sb.String(), params
}

func (r *CardStore) FilterCards(ctx context.Context, f models.CardFilter) ([]models.CardDetail, error) {
	query, params := buildCardFilterQuery(f)

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter cards: %w", err)
	}
	defer rows.Close()

	cards := []models.CardDetail{}
	for rows.Next() {
		var c models.CardDetail
		err := rows.Scan(&c.GameID, &c.Name, &c.Abilities, &c.Rarity, &c.Artist, &c.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeck(t *testing.T) {
	t.Run("missing formato rejected, nothing persisted", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/mazos", map[string]any{
			"id_mazo": 5,
			"nombre":  "Aggro Rojo",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "ID, nombre y formato son requeridos", body["error"])
		assert.Empty(t, f.createdDecks)
	})

	t.Run("valid payload forwards the creator", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/mazos", map[string]any{
			"id_mazo":    5,
			"nombre":     "Aggro Rojo",
			"formato":    "Modern",
			"id_creador": 7,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(5), body["id_mazo"])

		require.NotNil(t, f.lastCreatorID)
		assert.Equal(t, int64(7), *f.lastCreatorID)
	})

	t.Run("absent creator passed as nil for the service default", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		_, _ = doRequest(t, r, http.MethodPost, "/api/mazos", map[string]any{
			"id_mazo": 6,
			"nombre":  "Control Azul",
			"formato": "Standard",
		})

		require.Len(t, f.createdDecks, 1)
		assert.Nil(t, f.lastCreatorID)
	})
}

func TestListDecksTolerateMissingCreator(t *testing.T) {
	f := &fakeServices{}
	f.listDecks = func(ctx context.Context) ([]models.Deck, error) {
		return []models.Deck{
			{DeckID: 1, Name: "Huérfano", Format: "Legacy", FechaSubida: time.Now(), Creador: nil},
		}, nil
	}
	r := newTestRouter(f)

	rec, body := doRequest(t, r, http.MethodGet, "/api/mazos", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, "Huérfano", row["nombre_mazo"])
	assert.Nil(t, row["creador"])
}

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

func TestCreateTransaction(t *testing.T) {
	t.Run("valid payload returns the reference", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/transacciones", map[string]any{
			"ref_movimiento": 100,
			"tipo":           "venta",
			"id_emisor":      1,
			"id_receptor":    2,
			"cantidad":       3,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(100), body["ref_movimiento"])

		require.Len(t, f.createdTxs, 1)
		assert.Equal(t, "venta", f.createdTxs[0].Type)
		assert.Equal(t, int64(1), f.createdTxs[0].SenderID)
		assert.Equal(t, int64(2), f.createdTxs[0].ReceiverID)
	})

	t.Run("each required field enforced", func(t *testing.T) {
		full := map[string]any{
			"ref_movimiento": 100,
			"tipo":           "venta",
			"id_emisor":      1,
			"id_receptor":    2,
			"cantidad":       3,
		}

		for missing := range full {
			f := &fakeServices{}
			r := newTestRouter(f)

			payload := map[string]any{}
			for k, v := range full {
				if k != missing {
					payload[k] = v
				}
			}

			rec, body := doRequest(t, r, http.MethodPost, "/api/transacciones", payload)

			assert.Equalf(t, http.StatusBadRequest, rec.Code, "missing %s", missing)
			assert.Equal(t, "Todos los campos son requeridos", body["error"])
			assert.Empty(t, f.createdTxs)
		}
	})
}

func TestListTransactionsTolerateMissingUsers(t *testing.T) {
	f := &fakeServices{}
	f.listTxs = func(ctx context.Context) ([]models.Transaction, error) {
		emisor := "ana"
		return []models.Transaction{
			{RefMovimiento: 9, Type: "cambio", Quantity: 1, Fecha: time.Now(), Emisor: &emisor, Receptor: nil},
		}, nil
	}
	r := newTestRouter(f)

	rec, body := doRequest(t, r, http.MethodGet, "/api/transacciones", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, "ana", row["emisor"])
	assert.Nil(t, row["receptor"])
}

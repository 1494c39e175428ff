package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/productos", map[string]any{
			"id_productos": 10,
			"descripcion":  "Sobre de expansión",
			"coste":        4.99,
			"es_carta":     false,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(10), body["id_productos"])

		require.Len(t, f.createdProducts, 1)
		assert.Equal(t, "4.99", f.createdProducts[0].Cost.String())
		assert.False(t, f.createdProducts[0].IsCard)
	})

	t.Run("zero cost is a valid cost", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, _ := doRequest(t, r, http.MethodPost, "/api/productos", map[string]any{
			"id_productos": 11,
			"descripcion":  "Promoción",
			"coste":        0,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, f.createdProducts, 1)
		assert.True(t, f.createdProducts[0].Cost.IsZero())
	})

	t.Run("absent cost rejected", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/productos", map[string]any{
			"id_productos": 12,
			"descripcion":  "Sin precio",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ID, descripción y coste son requeridos", body["error"])
		assert.Empty(t, f.createdProducts)
	})

	t.Run("unchecked flag defaults to false", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		_, _ = doRequest(t, r, http.MethodPost, "/api/productos", map[string]any{
			"id_productos": 13,
			"descripcion":  "Funda",
			"coste":        1.5,
		})

		require.Len(t, f.createdProducts, 1)
		assert.False(t, f.createdProducts[0].IsCard)
	})
}

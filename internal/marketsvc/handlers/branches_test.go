package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBranch(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/sucursales", map[string]any{
			"id_sucursal": 4,
			"pais":        "España",
			"ciudad":      "Madrid",
			"telefono":    "911223344",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(4), body["id_sucursal"])

		require.Len(t, f.createdBranches, 1)
		require.NotNil(t, f.createdBranches[0].Phone)
		assert.Equal(t, "911223344", *f.createdBranches[0].Phone)
		assert.Nil(t, f.createdBranches[0].Street)
	})

	t.Run("missing ciudad rejected", func(t *testing.T) {
		f := &fakeServices{}
		r := newTestRouter(f)

		rec, body := doRequest(t, r, http.MethodPost, "/api/sucursales", map[string]any{
			"id_sucursal": 4,
			"pais":        "España",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ID, país y ciudad son requeridos", body["error"])
		assert.Empty(t, f.createdBranches)
	})
}

func TestListBranchesOrderedByStore(t *testing.T) {
	f := &fakeServices{}
	r := newTestRouter(f)

	_, _ = doRequest(t, r, http.MethodPost, "/api/sucursales", map[string]any{
		"id_sucursal": 1, "pais": "España", "ciudad": "Madrid",
	})

	rec, body := doRequest(t, r, http.MethodGet, "/api/sucursales", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, float64(1), data[0].(map[string]any)["id_sucursal"])
}

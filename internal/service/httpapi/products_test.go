package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/products", map[string]any{
		"name":  "Keyboard",
		"price": 49.99,
		"stock": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Product
	decodeBody(t, resp, &created)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Keyboard", created.Name)
	assert.Equal(t, 49.99, created.Price)
	assert.Equal(t, int64(10), created.Stock)
	assert.Nil(t, created.ProviderID)
	assert.Nil(t, created.Description)
}

func TestCreateProductNullProviderID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/products", map[string]any{
		"name":        "Keyboard",
		"price":       49.99,
		"stock":       0,
		"provider_id": nil,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Product
	decodeBody(t, resp, &created)
	assert.Nil(t, created.ProviderID)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{"missing name", map[string]any{"price": 1.0, "stock": 1}, "Invalid name"},
		{"missing price", map[string]any{"name": "X", "stock": 1}, "Invalid price"},
		{"negative price", map[string]any{"name": "X", "price": -1.0, "stock": 1}, "Invalid price"},
		{"price above limit", map[string]any{"name": "X", "price": 1000000.0, "stock": 1}, "Invalid price"},
		{"missing stock", map[string]any{"name": "X", "price": 1.0}, "Invalid stock"},
		{"negative stock", map[string]any{"name": "X", "price": 1.0, "stock": -1}, "Invalid stock"},
		{"zero provider", map[string]any{"name": "X", "price": 1.0, "stock": 1, "provider_id": 0}, "Invalid provider_id"},
		{"fractional stock", map[string]any{"name": "X", "price": 1.0, "stock": 1.5}, "Invalid body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/products", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, errorMessage(t, resp))
		})
	}
}

func TestUpdateProductPartial(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.Create(domain.Product{
		Name:  "Keyboard",
		Price: 49.99,
		Stock: 10,
	})
	require.NoError(t, err)

	resp := env.do(t, http.MethodPut, "/products/1", map[string]any{
		"price": 39.99,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Product
	decodeBody(t, resp, &updated)

	assert.Equal(t, "Keyboard", updated.Name)
	assert.Equal(t, 39.99, updated.Price)
	assert.Equal(t, int64(10), updated.Stock)
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPut, "/products/42", map[string]any{
		"price": 39.99,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", errorMessage(t, resp))
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.Create(domain.Product{Name: "Keyboard", Price: 49.99, Stock: 10})
	require.NoError(t, err)

	resp := env.do(t, http.MethodDelete, "/products/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

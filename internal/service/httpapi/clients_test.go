package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

func TestCreateClient(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/clients", map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
		"phone": "+34 600 000 000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Client
	decodeBody(t, resp, &created)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "alice@example.com", created.Email)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "+34 600 000 000", *created.Phone)
	assert.Nil(t, created.Address)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateClientValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{"missing name", map[string]any{"email": "a@b.com"}, "Invalid name"},
		{"blank name", map[string]any{"name": "   ", "email": "a@b.com"}, "Invalid name"},
		{"null name", map[string]any{"name": nil, "email": "a@b.com"}, "Invalid name"},
		{"missing email", map[string]any{"name": "Alice"}, "Invalid email"},
		{"email without at", map[string]any{"name": "Alice", "email": "nope"}, "Invalid email"},
		{"email with spaces", map[string]any{"name": "Alice", "email": "a b@c.com"}, "Invalid email"},
		{"numeric name", map[string]any{"name": 42, "email": "a@b.com"}, "Invalid body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/clients", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, errorMessage(t, resp))
		})
	}
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/clients", map[string]any{
		"name": "Alice", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/clients", map[string]any{
		"name": "Another Alice", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already exists", errorMessage(t, resp))
}

func TestGetClientInvalidID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/clients/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid id", errorMessage(t, resp))
}

func TestGetClientNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/clients/999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", errorMessage(t, resp))
}

func TestListClientsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		resp := env.do(t, http.MethodPost, "/clients", map[string]any{
			"name": "Client", "email": email,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := env.do(t, http.MethodGet, "/clients", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var clients []domain.Client
	decodeBody(t, resp, &clients)

	require.Len(t, clients, 3)
	assert.Equal(t, "c@x.com", clients[0].Email)
	assert.Equal(t, "b@x.com", clients[1].Email)
	assert.Equal(t, "a@x.com", clients[2].Email)
}

func TestUpdateClientPartial(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.clients.Create(domain.Client{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: strPtr("+34 600 000 000"),
	})
	require.NoError(t, err)

	// Меняется только телефон, имя и почта сохраняются.
	resp := env.do(t, http.MethodPut, "/clients/1", map[string]any{
		"phone": "+34 700 000 000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Client
	decodeBody(t, resp, &updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+34 700 000 000", *updated.Phone)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestUpdateClientNullClearsOptionalField(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.Create(domain.Client{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: strPtr("+34 600 000 000"),
	})
	require.NoError(t, err)

	resp := env.do(t, http.MethodPut, "/clients/1", map[string]any{
		"phone": nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Client
	decodeBody(t, resp, &updated)
	assert.Nil(t, updated.Phone)
}

func TestUpdateClientNullRequiredField(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.Create(domain.Client{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// Явный null обязательного поля отклоняется, отсутствие поля — нет.
	resp := env.do(t, http.MethodPut, "/clients/1", map[string]any{
		"name": nil,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid name", errorMessage(t, resp))
}

func TestUpdateClientDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.Create(domain.Client{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = env.clients.Create(domain.Client{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	resp := env.do(t, http.MethodPut, "/clients/2", map[string]any{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already exists", errorMessage(t, resp))
}

func TestDeleteClient(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.Create(domain.Client{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	resp := env.do(t, http.MethodDelete, "/clients/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodDelete, "/clients/1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", errorMessage(t, resp))
}

func strPtr(s string) *string { return &s }

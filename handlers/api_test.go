package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (a *testApp) api(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, a.srv.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (a *testApp) token(t *testing.T, username string) string {
	t.Helper()
	status, out := a.api(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, status, out)
	tok, _ := out["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestAPILogin(t *testing.T) {
	app := newTestApp(t)
	app.customer(t, "diner")

	status, out := app.api(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "diner", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid username or password.", out["error"])

	status, _ = app.api(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "diner"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, out = app.api(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "diner", "password": password})
	require.Equal(t, http.StatusOK, status)
	user := out["user"].(map[string]any)
	assert.Equal(t, "customer", user["role"])
}

func TestAPIOrdering(t *testing.T) {
	app := newTestApp(t)
	app.customer(t, "diner")
	_, _, food := app.catalog(t, "Pad Thai", "9.99")
	tok := app.token(t, "diner")

	status, out := app.api(t, http.MethodGet, "/api/foods", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, out["count"])

	status, _ = app.api(t, http.MethodPost, "/api/orders", "", map[string]any{"food_id": food.ID})
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = app.api(t, http.MethodPost, "/api/orders", "garbage", map[string]any{"food_id": food.ID})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, out = app.api(t, http.MethodPost, "/api/orders", tok, map[string]any{"food_id": food.ID, "quantity": 3})
	require.Equal(t, http.StatusCreated, status, out)
	order := out["order"].(map[string]any)
	assert.Equal(t, "29.97", order["total_price"])

	status, _ = app.api(t, http.MethodPost, "/api/orders", tok, map[string]any{"food_id": food.ID, "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = app.api(t, http.MethodPost, "/api/orders", tok, map[string]any{"food_id": 999})
	assert.Equal(t, http.StatusNotFound, status)

	status, out = app.api(t, http.MethodGet, "/api/orders", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, out["count"])
}

func TestAPIAdminRoutes(t *testing.T) {
	app := newTestApp(t)
	app.customer(t, "diner")
	app.staff(t, "chef")

	for _, path := range []string{"/api/admin/orders", "/api/admin/users"} {
		status, _ := app.api(t, http.MethodGet, path, app.token(t, "diner"), nil)
		assert.Equal(t, http.StatusForbidden, status, path)

		status, out := app.api(t, http.MethodGet, path, app.token(t, "chef"), nil)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Contains(t, out, "count", fmt.Sprint(out))
	}
}

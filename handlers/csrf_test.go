package handlers_test

import (
	"bytes"
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"food-order/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csrfField = regexp.MustCompile(`name="gorilla.csrf.Token" value="([^"]+)"`)

func newCSRFApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWith(t, middleware.CSRF(bytes.Repeat([]byte("c"), 32), false, nil))
}

func TestCSRFRejectsFormWithoutToken(t *testing.T) {
	app := newCSRFApp(t)
	c := app.client(t)

	app.get(t, c, "/register/")
	resp := app.postForm(t, c, "/register/", registerForm())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, err := app.store.UserByUsername(t.Context(), "grace")
	assert.Error(t, err)
}

func TestCSRFAcceptsTokenFromRenderedForm(t *testing.T) {
	app := newCSRFApp(t)
	c := app.client(t)

	_, body := app.get(t, c, "/register/")
	m := csrfField.FindStringSubmatch(body)
	require.Len(t, m, 2, "register page should carry a csrf field")

	form := registerForm()
	form.Set("gorilla.csrf.Token", m[1])
	resp := app.postForm(t, c, "/register/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login/", location(resp))
}

func TestCSRFSkipsAPI(t *testing.T) {
	app := newCSRFApp(t)
	app.customer(t, "diner")

	status, out := app.api(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "diner", "password": password,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, out["token"])

	// the browser surface stays protected on the same server
	resp := app.postForm(t, app.client(t), "/login/", url.Values{"username": {"diner"}, "password": {password}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

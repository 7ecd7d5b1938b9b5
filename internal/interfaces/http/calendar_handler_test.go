package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homer-api/internal/infrastructure/nameday"
	apphttp "github.com/jhoicas/homer-api/internal/interfaces/http"
)

func buildCalendarApp(t *testing.T) *fiber.App {
	t.Helper()
	lookup, err := nameday.NewLookup()
	require.NoError(t, err)

	app := fiber.New()
	handler := apphttp.NewCalendarHandler(lookup)
	app.Get("/api/calendar/nameday", handler.Nameday)
	return app
}

func TestNameday_FechaValida(t *testing.T) {
	app := buildCalendarApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/nameday?date=2026-06-29", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Date  string   `json:"date"`
		Names []string `json:"names"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2026-06-29", body.Date)
	assert.Contains(t, body.Names, "Pedro")
}

func TestNameday_SinFechaRetorna400(t *testing.T) {
	app := buildCalendarApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/nameday", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNameday_FechaMalformadaRetorna400(t *testing.T) {
	app := buildCalendarApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/nameday?date=29/06/2026", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

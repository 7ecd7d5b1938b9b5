// Package weather consulta el clima actual en OpenWeatherMap.
// La respuesta JSON del proveedor se devuelve tal cual al cliente.
package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/homer-api/pkg/config"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client cliente HTTP del proveedor de clima.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient construye el cliente con timeout propio.
func NewClient(cfg config.WeatherConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured indica si hay API key; sin ella el endpoint queda deshabilitado.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Current consulta el clima actual para las coordenadas dadas en unidades
// métricas. Devuelve el status y el cuerpo del proveedor sin tocar.
func (c *Client) Current(ctx context.Context, lat, lon string) (int, []byte, error) {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("crear request clima: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("consultar clima: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("leer respuesta clima: %w", err)
	}
	return resp.StatusCode, body, nil
}

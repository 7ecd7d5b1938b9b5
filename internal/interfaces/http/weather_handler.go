package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/infrastructure/weather"
)

// WeatherHandler proxy del clima actual (protegido). La respuesta del
// proveedor se reenvía tal cual, status incluido.
type WeatherHandler struct {
	client *weather.Client
}

// NewWeatherHandler construye el handler.
func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// Current godoc
// @Summary      Clima actual por coordenadas
// @Tags         weather
// @Security     Bearer
// @Produce      json
// @Param        lat  query  string  true  "Latitud"
// @Param        lon  query  string  true  "Longitud"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/weather [get]
func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	if !h.client.Configured() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DISABLED", Message: "proxy de clima sin configurar"})
	}
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lat y lon son requeridos"})
	}
	status, body, err := h.client.Current(c.Context(), lat, lon)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "proveedor de clima no disponible"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/infrastructure/nameday"
)

// CalendarHandler expone el santoral del día (protegido).
type CalendarHandler struct {
	lookup *nameday.Lookup
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(lookup *nameday.Lookup) *CalendarHandler {
	return &CalendarHandler{lookup: lookup}
}

// Nameday godoc
// @Summary      Santoral de una fecha
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.NamedayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calendar/nameday [get]
func (h *CalendarHandler) Nameday(c *fiber.Ctx) error {
	raw := c.Query("date")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date es requerido (YYYY-MM-DD)"})
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha inválido, usar YYYY-MM-DD"})
	}
	names, ok := h.lookup.Names(date)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin santoral para esa fecha"})
	}
	return c.JSON(dto.NamedayResponse{Date: raw, Names: names})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	domfridge "github.com/jhoicas/homer-api/internal/domain/fridge"
)

// FridgeHandler expone las vistas derivadas del inventario (protegido).
type FridgeHandler struct {
	uc *appfridge.UseCase
}

// NewFridgeHandler construye el handler.
func NewFridgeHandler(uc *appfridge.UseCase) *FridgeHandler {
	return &FridgeHandler{uc: uc}
}

// Views godoc
// @Summary      Vistas derivadas del inventario
// @Description  Agrupación por categoría y por estado, stock bajo y caducidad próxima.
// @Tags         fridge
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FridgeViewsResponse
// @Router       /api/fridge/views [get]
func (h *FridgeHandler) Views(c *fiber.Ctx) error {
	out, err := h.uc.Views(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas agregadas del inventario
// @Tags         fridge
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/fridge/stats [get]
func (h *FridgeHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Filter godoc
// @Summary      Filtrar items por criterios conjuntivos
// @Description  status y category aceptan "all" como comodín; search es substring sobre name o description.
// @Tags         fridge
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Estado o all"
// @Param        category  query  string  false  "ID de categoría o all"
// @Param        search    query  string  false  "Substring"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/fridge/filter [get]
func (h *FridgeHandler) Filter(c *fiber.Ctx) error {
	criteria := domfridge.Criteria{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	out, err := h.uc.Filter(c.Context(), criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ShoppingListPDF godoc
// @Summary      Lista de compra en PDF
// @Description  Genera un PDF con los items en stock bajo o agotados.
// @Tags         fridge
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/fridge/shopping-list.pdf [get]
func (h *FridgeHandler) ShoppingListPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ShoppingListPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-compra.pdf"`)
	return c.Send(pdfBytes)
}

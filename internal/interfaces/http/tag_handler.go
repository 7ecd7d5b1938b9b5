package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	"github.com/jhoicas/homer-api/internal/application/usecase"
	"github.com/jhoicas/homer-api/internal/domain"
)

// TagHandler maneja las peticiones HTTP para etiquetas (protegido).
type TagHandler struct {
	uc     *usecase.TagUseCase
	fridge *appfridge.UseCase
}

// NewTagHandler construye el handler.
func NewTagHandler(uc *usecase.TagUseCase, fridge *appfridge.UseCase) *TagHandler {
	return &TagHandler{uc: uc, fridge: fridge}
}

// List godoc
// @Summary      Listar etiquetas
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TagListResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear etiqueta
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTagRequest  true  "Datos de la etiqueta"
// @Success      201   {object}  dto.TagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de etiqueta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.fridge.InvalidateTags()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar etiqueta (parcial)
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la etiqueta"
// @Param        body  body  dto.UpdateTagRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TagResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [put]
func (h *TagHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de etiqueta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etiqueta no encontrada"})
	}
	h.fridge.InvalidateTags()
	h.fridge.InvalidateItems()
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar etiqueta
// @Tags         tags
// @Security     Bearer
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etiqueta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.fridge.InvalidateTags()
	h.fridge.InvalidateItems()
	return c.SendStatus(fiber.StatusNoContent)
}

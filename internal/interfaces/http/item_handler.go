package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	"github.com/jhoicas/homer-api/internal/application/usecase"
	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// ItemHandler maneja las peticiones HTTP para items del inventario (protegido).
// Cada escritura invalida la foto de items de la caché de vistas.
type ItemHandler struct {
	uc     *usecase.ItemUseCase
	fridge *appfridge.UseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, fridge *appfridge.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc, fridge: fridge}
}

// List godoc
// @Summary      Listar items del inventario
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Filtro por estado"
// @Param        category  query  string  false  "Filtro por ID de categoría"
// @Param        tag       query  string  false  "Filtro por ID de etiqueta"
// @Param        search    query  string  false  "Substring sobre name o description"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filters := repository.ItemFilters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
	}
	out, err := h.uc.List(c.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y status debe ser válido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría o etiqueta no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "asociación duplicada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.fridge.InvalidateItems()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar item (parcial)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	h.fridge.InvalidateItems()
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         items
// @Security     Bearer
// @Param        id   path  string  true  "ID del item"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.fridge.InvalidateItems()
	return c.SendStatus(fiber.StatusNoContent)
}

// AddCategory asocia una categoría existente al item.
// @Router /api/items/{id}/categories/{categoryID} [post]
func (h *ItemHandler) AddCategory(c *fiber.Ctx) error {
	err := h.uc.AddCategory(c.Context(), c.Params("id"), c.Params("categoryID"))
	return h.associationResult(c, err)
}

// RemoveCategory quita la asociación item↔categoría.
// @Router /api/items/{id}/categories/{categoryID} [delete]
func (h *ItemHandler) RemoveCategory(c *fiber.Ctx) error {
	err := h.uc.RemoveCategory(c.Context(), c.Params("id"), c.Params("categoryID"))
	return h.associationResult(c, err)
}

// AddTag asocia una etiqueta existente al item.
// @Router /api/items/{id}/tags/{tagID} [post]
func (h *ItemHandler) AddTag(c *fiber.Ctx) error {
	err := h.uc.AddTag(c.Context(), c.Params("id"), c.Params("tagID"))
	return h.associationResult(c, err)
}

// RemoveTag quita la asociación item↔etiqueta.
// @Router /api/items/{id}/tags/{tagID} [delete]
func (h *ItemHandler) RemoveTag(c *fiber.Ctx) error {
	err := h.uc.RemoveTag(c.Context(), c.Params("id"), c.Params("tagID"))
	return h.associationResult(c, err)
}

// ReplaceCategories reemplaza el set completo de categorías del item.
// @Router /api/items/{id}/categories [put]
func (h *ItemHandler) ReplaceCategories(c *fiber.Ctx) error {
	var in dto.ReplaceAssociationsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.ReplaceCategories(c.Context(), c.Params("id"), in.IDs)
	return h.associationResult(c, err)
}

// ReplaceTags reemplaza el set completo de etiquetas del item.
// @Router /api/items/{id}/tags [put]
func (h *ItemHandler) ReplaceTags(c *fiber.Ctx) error {
	var in dto.ReplaceAssociationsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.ReplaceTags(c.Context(), c.Params("id"), in.IDs)
	return h.associationResult(c, err)
}

// associationResult mapea el resultado común de las operaciones de asociación.
func (h *ItemHandler) associationResult(c *fiber.Ctx, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item, categoría o etiqueta no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la asociación ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.fridge.InvalidateItems()
	return c.SendStatus(fiber.StatusNoContent)
}

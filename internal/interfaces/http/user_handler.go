package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/application/usecase"
	"github.com/jhoicas/homer-api/internal/domain"
)

// UserHandler expone los roles del usuario autenticado y la gestión de
// asignaciones (solo admin).
type UserHandler struct {
	roles *usecase.RoleUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(roles *usecase.RoleUseCase) *UserHandler {
	return &UserHandler{roles: roles}
}

// MyRoles godoc
// @Summary      Roles y capacidades del usuario autenticado
// @Description  Lectura autoritativa contra la DB, no contra la foto del token.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RolesResponse
// @Router       /api/me/roles [get]
func (h *UserHandler) MyRoles(c *fiber.Ctx) error {
	out, err := h.roles.Capabilities(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AssignRole godoc
// @Summary      Asignar un rol a un usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.AssignRoleRequest  true  "Usuario y rol"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/roles [post]
func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	var in dto.AssignRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y role son requeridos"})
	}
	if err := h.roles.Assign(c.Context(), in.UserID, in.Role); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el usuario ya tiene ese rol"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RevokeRole godoc
// @Summary      Quitar un rol a un usuario
// @Tags         admin
// @Security     Bearer
// @Param        userID  path  string  true  "ID del usuario"
// @Param        role    path  string  true  "Rol a quitar"
// @Success      204     "sin contenido"
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/admin/roles/{userID}/{role} [delete]
func (h *UserHandler) RevokeRole(c *fiber.Ctx) error {
	if err := h.roles.Revoke(c.Context(), c.Params("userID"), c.Params("role")); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el usuario no tiene ese rol"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

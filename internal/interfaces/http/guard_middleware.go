package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/usecase"
)

// AdminGuard protege las páginas bajo /admin. Resuelve los roles contra la DB
// (no contra la foto del token) y redirige fuera con 303 a quien no sea admin.
// La identidad ausente cuenta como set vacío y también sale redirigida.
func AdminGuard(roles *usecase.RoleUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		set, err := roles.Resolve(c.Context(), GetUserID(c))
		if err != nil {
			return c.Redirect("/?error=unauthorized", fiber.StatusSeeOther)
		}
		if !set.IsAdmin() {
			return c.Redirect("/?error=unauthorized", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

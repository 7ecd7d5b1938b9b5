package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/pkg/jwt"
)

// Locals keys para la identidad extraída del token.
const (
	LocalUserID = "user_id"
	LocalRoles  = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Roles a c.Locals.
// Los roles del token son la foto al momento del login; la lectura
// autoritativa es GET /api/me/roles, que consulta la DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, roles, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRoles, entity.RoleSet(roles))
		return c.Next()
	}
}

// OptionalAuth extrae la identidad del Bearer Token si viene y es válido;
// si no, sigue con identidad vacía. Lo usan las rutas cuyo control de acceso
// decide un guard posterior (p.ej. redirección en páginas /admin).
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if userID, roles, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1])); err == nil {
				c.Locals(LocalUserID, userID)
				c.Locals(LocalRoles, entity.RoleSet(roles))
			}
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoles devuelve el set de roles del contexto; vacío si no hay token.
func GetRoles(c *fiber.Ctx) entity.RoleSet {
	v := c.Locals(LocalRoles)
	if v == nil {
		return entity.RoleSet{}
	}
	roles, _ := v.(entity.RoleSet)
	return roles
}

// RequireCapability corta con 403 si el set de roles del token no pasa el
// predicado dado. Debe ir después de AuthMiddleware.
func RequireCapability(check func(entity.RoleSet) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !check(GetRoles(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
		}
		return c.Next()
	}
}

// RequireRole corta con 403 si el token no trae ninguno de los roles dados.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		set := GetRoles(c)
		for _, role := range roles {
			if set.Has(role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
	}
}

package repository

import (
	"context"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para las asignaciones de rol.
type RoleRepository interface {
	// ListByUser devuelve los roles del usuario; set vacío si no tiene ninguno.
	ListByUser(ctx context.Context, userID string) (entity.RoleSet, error)
	// Assign asigna un rol; domain.ErrDuplicate si ya estaba asignado.
	Assign(ctx context.Context, userID, role string) error
	// Revoke quita un rol; domain.ErrNotFound si no estaba asignado.
	Revoke(ctx context.Context, userID, role string) error
}

package usecase

import (
	"context"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// RoleUseCase resolución de roles y capacidades, más la gestión de
// asignaciones (solo admin). Los roles se resuelven contra la DB en cada
// llamada: cualquier cambio de identidad o de asignaciones se refleja en la
// siguiente resolución.
type RoleUseCase struct {
	roles repository.RoleRepository
	users repository.UserRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles repository.RoleRepository, users repository.UserRepository) *RoleUseCase {
	return &RoleUseCase{roles: roles, users: users}
}

// Resolve devuelve el set de roles del usuario. Identidad ausente (userID
// vacío) devuelve un set vacío, NO un error; todas las capacidades derivadas
// quedan en false.
func (uc *RoleUseCase) Resolve(ctx context.Context, userID string) (entity.RoleSet, error) {
	if userID == "" {
		return entity.RoleSet{}, nil
	}
	return uc.roles.ListByUser(ctx, userID)
}

// Capabilities resuelve los roles y devuelve la respuesta con los flags derivados.
func (uc *RoleUseCase) Capabilities(ctx context.Context, userID string) (*dto.RolesResponse, error) {
	roles, err := uc.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := dto.NewRolesResponse(roles)
	return &out, nil
}

// Assign asigna un rol a un usuario existente.
func (uc *RoleUseCase) Assign(ctx context.Context, userID, role string) error {
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.roles.Assign(ctx, userID, role)
}

// Revoke quita un rol a un usuario.
func (uc *RoleUseCase) Revoke(ctx context.Context, userID, role string) error {
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	return uc.roles.Revoke(ctx, userID, role)
}

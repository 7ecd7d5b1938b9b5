package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// La tabla user_roles tiene constraint único (user_id, role).
type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// ListByUser devuelve el set de roles del usuario; vacío si no tiene ninguno.
func (r *RoleRepo) ListByUser(ctx context.Context, userID string) (entity.RoleSet, error) {
	rows, err := r.q.Query(ctx, `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	defer rows.Close()

	var roles entity.RoleSet
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Assign asigna un rol al usuario. ErrDuplicate si ya lo tenía,
// ErrUserNotFound si el usuario no existe.
func (r *RoleRepo) Assign(ctx context.Context, userID, role string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO user_roles (user_id, role, created_at) VALUES ($1, $2, now())`,
		userID, role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert user role: %w", err)
	}
	return nil
}

// Revoke quita un rol del usuario. ErrNotFound si no lo tenía asignado.
func (r *RoleRepo) Revoke(ctx context.Context, userID, role string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`,
		userID, role,
	)
	if err != nil {
		return fmt.Errorf("delete user role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas de un solo registro devuelven (nil, nil) si no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

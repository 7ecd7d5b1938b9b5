package repository

import (
	"context"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// List devuelve todas las categorías ordenadas por nombre.
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	// UsageCount cuenta los joins item↔categoría de la categoría dada.
	UsageCount(ctx context.Context, categoryID string) (int, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// TagRepository define el puerto de persistencia para Tag (DIP).
type TagRepository interface {
	// List devuelve todas las etiquetas ordenadas por nombre.
	List(ctx context.Context) ([]entity.Tag, error)
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id string) error
}

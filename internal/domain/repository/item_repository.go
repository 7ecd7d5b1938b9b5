package repository

import (
	"context"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// ItemFilters criterios del listado de items. Todos opcionales (vacío = sin
// restricción); se aplican en el servidor, incluidos category y tag.
type ItemFilters struct {
	Status   string
	Category string // ID de categoría
	Tag      string // ID de etiqueta
	Search   string // substring case-insensitive contra name o description
}

// ItemRepository define el puerto de persistencia para Item y sus
// asociaciones (DIP). Update y Delete devuelven domain.ErrNotFound si el id
// no existe.
type ItemRepository interface {
	// List devuelve los items con categorías y etiquetas embebidas,
	// ordenados por updated_at descendente.
	List(ctx context.Context, filters ItemFilters) ([]entity.ItemWithRelations, error)
	GetByID(ctx context.Context, id string) (*entity.ItemWithRelations, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error

	AddCategory(ctx context.Context, itemID, categoryID string) (*entity.ItemCategory, error)
	RemoveCategory(ctx context.Context, itemID, categoryID string) error
	AddTag(ctx context.Context, itemID, tagID string) (*entity.ItemTag, error)
	RemoveTag(ctx context.Context, itemID, tagID string) error
	RemoveAllCategories(ctx context.Context, itemID string) error
	RemoveAllTags(ctx context.Context, itemID string) error
}

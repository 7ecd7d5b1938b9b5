package fridge

import (
	"context"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// ShoppingListGenerator define el puerto de salida para la lista de compra en
// PDF. La implementación concreta usa Maroto; para tests se inyecta un fake.
type ShoppingListGenerator interface {
	GenerateShoppingListPDF(ctx context.Context, items []entity.ItemWithRelations) ([]byte, error)
}

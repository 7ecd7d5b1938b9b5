// Package fridge mantiene la foto en memoria de las colecciones del
// inventario y expone las vistas derivadas recomputadas bajo demanda.
//
// El modelo reactivo del cliente original se traduce a una caché con
// invalidación explícita: cada escritura invalida su colección y el siguiente
// acceso a una vista la refresca antes de recomputar las funciones puras de
// domain/fridge. Las tres colecciones se refrescan por separado, nunca como
// foto conjunta atómica: una vista puede combinar una colección recién
// refrescada con otra más vieja, igual que en el original.
package fridge

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/fridge"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// UseCase caché de colecciones + vistas derivadas.
type UseCase struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	pdf        ShoppingListGenerator

	now func() time.Time // inyectable en tests

	mu              sync.RWMutex
	snapItems       []entity.ItemWithRelations
	snapCategories  []entity.Category
	snapTags        []entity.Tag
	staleItems      bool
	staleCategories bool
	staleTags       bool
}

// NewUseCase construye la caché; todas las colecciones nacen invalidadas.
func NewUseCase(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	pdf ShoppingListGenerator,
) *UseCase {
	return &UseCase{
		items:           items,
		categories:      categories,
		tags:            tags,
		pdf:             pdf,
		now:             time.Now,
		staleItems:      true,
		staleCategories: true,
		staleTags:       true,
	}
}

// SetNow sustituye el reloj; lo usan los tests de la ventana de caducidad.
func (uc *UseCase) SetNow(now func() time.Time) {
	uc.now = now
}

// InvalidateItems marca la colección de items como obsoleta. Debe llamarse
// tras cada escritura sobre items o sus asociaciones.
func (uc *UseCase) InvalidateItems() {
	uc.mu.Lock()
	uc.staleItems = true
	uc.mu.Unlock()
}

// InvalidateCategories marca la colección de categorías como obsoleta.
func (uc *UseCase) InvalidateCategories() {
	uc.mu.Lock()
	uc.staleCategories = true
	uc.mu.Unlock()
}

// InvalidateTags marca la colección de etiquetas como obsoleta.
func (uc *UseCase) InvalidateTags() {
	uc.mu.Lock()
	uc.staleTags = true
	uc.mu.Unlock()
}

// refresh trae del repositorio las colecciones marcadas como obsoletas.
// Cada colección se refresca de forma independiente.
func (uc *UseCase) refresh(ctx context.Context) error {
	uc.mu.RLock()
	staleItems, staleCategories, staleTags := uc.staleItems, uc.staleCategories, uc.staleTags
	uc.mu.RUnlock()

	if staleItems {
		items, err := uc.items.List(ctx, repository.ItemFilters{})
		if err != nil {
			return err
		}
		uc.mu.Lock()
		uc.snapItems = items
		uc.staleItems = false
		uc.mu.Unlock()
	}
	if staleCategories {
		categories, err := uc.categories.List(ctx)
		if err != nil {
			return err
		}
		uc.mu.Lock()
		uc.snapCategories = categories
		uc.staleCategories = false
		uc.mu.Unlock()
	}
	if staleTags {
		tags, err := uc.tags.List(ctx)
		if err != nil {
			return err
		}
		uc.mu.Lock()
		uc.snapTags = tags
		uc.staleTags = false
		uc.mu.Unlock()
	}
	return nil
}

// snapshot devuelve la foto actual (items + categorías) tras refrescar lo obsoleto.
func (uc *UseCase) snapshot(ctx context.Context) ([]entity.ItemWithRelations, []entity.Category, error) {
	if err := uc.refresh(ctx); err != nil {
		return nil, nil, err
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapItems, uc.snapCategories, nil
}

// Views recomputa las cuatro vistas derivadas sobre la foto actual.
func (uc *UseCase) Views(ctx context.Context) (*dto.FridgeViewsResponse, error) {
	items, categories, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.ItemResponse)
	for name, bucket := range fridge.GroupByCategory(items, categories) {
		byCategory[name] = dto.NewItemResponses(bucket)
	}
	byStatus := make(map[string][]dto.ItemResponse)
	for status, bucket := range fridge.GroupByStatus(items) {
		byStatus[status] = dto.NewItemResponses(bucket)
	}

	return &dto.FridgeViewsResponse{
		GroupedByCategory: byCategory,
		GroupedByStatus:   byStatus,
		LowStock:          dto.NewItemResponses(fridge.LowStock(items)),
		ExpiringSoon:      dto.NewItemResponses(fridge.ExpiringSoon(items, uc.now())),
	}, nil
}

// Stats recomputa las estadísticas agregadas sobre la foto actual.
func (uc *UseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	items, _, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s := fridge.ComputeStats(items)
	return &dto.StatsResponse{
		Total:      s.Total,
		LowStock:   s.LowStock,
		Expired:    s.Expired,
		OutOfStock: s.OutOfStock,
	}, nil
}

// Filter aplica el filtro por criterios sobre la foto actual.
// Devuelve siempre un slice no nil.
func (uc *UseCase) Filter(ctx context.Context, criteria fridge.Criteria) ([]dto.ItemResponse, error) {
	items, _, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewItemResponses(fridge.Filter(items, criteria)), nil
}

// ShoppingListPDF genera la lista de compra con los items en stock bajo.
func (uc *UseCase) ShoppingListPDF(ctx context.Context) ([]byte, error) {
	items, _, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateShoppingListPDF(ctx, fridge.LowStock(items))
}

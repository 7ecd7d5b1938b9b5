package fridge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	domfridge "github.com/jhoicas/homer-api/internal/domain/fridge"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items     []entity.ItemWithRelations
	listCalls int
}

func (f *fakeItemRepo) List(ctx context.Context, filters repository.ItemFilters) ([]entity.ItemWithRelations, error) {
	f.listCalls++
	return f.items, nil
}
func (f *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.ItemWithRelations, error) {
	return nil, nil
}
func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error { return nil }
func (f *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error { return nil }
func (f *fakeItemRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeItemRepo) AddCategory(ctx context.Context, itemID, categoryID string) (*entity.ItemCategory, error) {
	return nil, nil
}
func (f *fakeItemRepo) RemoveCategory(ctx context.Context, itemID, categoryID string) error {
	return nil
}
func (f *fakeItemRepo) AddTag(ctx context.Context, itemID, tagID string) (*entity.ItemTag, error) {
	return nil, nil
}
func (f *fakeItemRepo) RemoveTag(ctx context.Context, itemID, tagID string) error    { return nil }
func (f *fakeItemRepo) RemoveAllCategories(ctx context.Context, itemID string) error { return nil }
func (f *fakeItemRepo) RemoveAllTags(ctx context.Context, itemID string) error       { return nil }

type fakeCategoryRepo struct {
	categories []entity.Category
	listCalls  int
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	f.listCalls++
	return f.categories, nil
}
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error { return nil }
func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error                 { return nil }
func (f *fakeCategoryRepo) UsageCount(ctx context.Context, categoryID string) (int, error) {
	return 0, nil
}

type fakeTagRepo struct {
	tags      []entity.Tag
	listCalls int
}

func (f *fakeTagRepo) List(ctx context.Context) ([]entity.Tag, error) {
	f.listCalls++
	return f.tags, nil
}
func (f *fakeTagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) { return nil, nil }
func (f *fakeTagRepo) Create(ctx context.Context, tag *entity.Tag) error           { return nil }
func (f *fakeTagRepo) Update(ctx context.Context, tag *entity.Tag) error           { return nil }
func (f *fakeTagRepo) Delete(ctx context.Context, id string) error                 { return nil }

type fakePDF struct {
	generated int
}

func (f *fakePDF) GenerateShoppingListPDF(ctx context.Context, items []entity.ItemWithRelations) ([]byte, error) {
	f.generated++
	return []byte("%PDF-fake"), nil
}

func buildUseCase(items ...entity.ItemWithRelations) (*appfridge.UseCase, *fakeItemRepo) {
	itemRepo := &fakeItemRepo{items: items}
	uc := appfridge.NewUseCase(itemRepo, &fakeCategoryRepo{}, &fakeTagRepo{}, &fakePDF{})
	return uc, itemRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestViews_RefrescaSoloLaPrimeraVez(t *testing.T) {
	uc, itemRepo := buildUseCase(
		entity.ItemWithRelations{Item: entity.Item{ID: "i1", Name: "Leche", Status: entity.StatusInStock}},
	)
	ctx := context.Background()

	_, err := uc.Views(ctx)
	require.NoError(t, err)
	_, err = uc.Views(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, itemRepo.listCalls,
		"sin invalidación, la segunda lectura debe servirse de la foto cacheada")
}

func TestViews_InvalidateItemsFuerzaRefresh(t *testing.T) {
	uc, itemRepo := buildUseCase(
		entity.ItemWithRelations{Item: entity.Item{ID: "i1", Name: "Leche", Status: entity.StatusInStock}},
	)
	ctx := context.Background()

	_, err := uc.Views(ctx)
	require.NoError(t, err)

	// La escritura invalida; la siguiente lectura ve la colección nueva.
	itemRepo.items = append(itemRepo.items,
		entity.ItemWithRelations{Item: entity.Item{ID: "i2", Name: "Pan", Status: entity.StatusLowStock}})
	uc.InvalidateItems()

	out, err := uc.Views(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, itemRepo.listCalls)
	assert.Len(t, out.LowStock, 1, "la vista debe reflejar el item nuevo tras invalidar")
}

func TestViews_ExpiringSoonUsaRelojInyectado(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	exp := now.Add(2 * 24 * time.Hour)

	uc, _ := buildUseCase(
		entity.ItemWithRelations{Item: entity.Item{
			ID: "i1", Name: "Yogur", Status: entity.StatusInStock, ExpirationDate: &exp,
		}},
	)
	uc.SetNow(func() time.Time { return now })

	out, err := uc.Views(context.Background())
	require.NoError(t, err)

	assert.Len(t, out.ExpiringSoon, 1)
}

func TestStats_SubcontadoresPorStatus(t *testing.T) {
	uc, _ := buildUseCase(
		entity.ItemWithRelations{Item: entity.Item{ID: "i1", Status: entity.StatusInStock}},
		entity.ItemWithRelations{Item: entity.Item{ID: "i2", Status: entity.StatusExpired}},
		entity.ItemWithRelations{Item: entity.Item{ID: "i3", Status: entity.StatusOutOfStock}},
	)

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 0, out.LowStock)
	assert.Equal(t, 1, out.Expired)
	assert.Equal(t, 1, out.OutOfStock)
}

func TestFilter_SinCoincidenciasDevuelveSliceVacioNoNil(t *testing.T) {
	uc, _ := buildUseCase(
		entity.ItemWithRelations{Item: entity.Item{ID: "i1", Name: "Leche", Status: entity.StatusInStock}},
	)

	out, err := uc.Filter(context.Background(), domfridge.Criteria{Search: "inexistente"})
	require.NoError(t, err)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestShoppingListPDF_GeneraConLosItemsEnStockBajo(t *testing.T) {
	itemRepo := &fakeItemRepo{items: []entity.ItemWithRelations{
		{Item: entity.Item{ID: "i1", Name: "Café", Status: entity.StatusOutOfStock}},
		{Item: entity.Item{ID: "i2", Name: "Leche", Status: entity.StatusInStock}},
	}}
	pdf := &fakePDF{}
	uc := appfridge.NewUseCase(itemRepo, &fakeCategoryRepo{}, &fakeTagRepo{}, pdf)

	out, err := uc.ShoppingListPDF(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, out)
	assert.Equal(t, 1, pdf.generated)
}

package fridge_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/fridge"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func qty(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func item(id, name, status string) entity.ItemWithRelations {
	return entity.ItemWithRelations{
		Item: entity.Item{ID: id, Name: name, Status: status},
	}
}

func withCategories(it entity.ItemWithRelations, cats ...entity.Category) entity.ItemWithRelations {
	it.Categories = cats
	return it
}

func withExpiration(it entity.ItemWithRelations, exp time.Time) entity.ItemWithRelations {
	it.ExpirationDate = &exp
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// GroupByCategory
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupByCategory_CubetaPorCadaCategoriaAunqueVacia(t *testing.T) {
	lacteos := entity.Category{ID: "c1", Name: "Lácteos"}
	bebidas := entity.Category{ID: "c2", Name: "Bebidas"}

	items := []entity.ItemWithRelations{
		withCategories(item("i1", "Leche", entity.StatusInStock), lacteos),
	}

	grouped := fridge.GroupByCategory(items, []entity.Category{lacteos, bebidas})

	require.Contains(t, grouped, "Lácteos")
	require.Contains(t, grouped, "Bebidas", "una categoría sin items debe tener cubeta vacía")
	assert.Len(t, grouped["Lácteos"], 1)
	assert.Empty(t, grouped["Bebidas"])
}

func TestGroupByCategory_ItemConVariasCategoriasApareceEnTodas(t *testing.T) {
	lacteos := entity.Category{ID: "c1", Name: "Lácteos"}
	frescos := entity.Category{ID: "c2", Name: "Frescos"}

	items := []entity.ItemWithRelations{
		withCategories(item("i1", "Yogur", entity.StatusInStock), lacteos, frescos),
	}

	grouped := fridge.GroupByCategory(items, []entity.Category{lacteos, frescos})

	assert.Len(t, grouped["Lácteos"], 1)
	assert.Len(t, grouped["Frescos"], 1)
}

func TestGroupByCategory_SinCategoriasVaAUncategorized(t *testing.T) {
	items := []entity.ItemWithRelations{
		item("i1", "Pilas", entity.StatusInStock),
	}

	grouped := fridge.GroupByCategory(items, nil)

	require.Contains(t, grouped, fridge.UncategorizedBucket)
	assert.Len(t, grouped[fridge.UncategorizedBucket], 1)
}

func TestGroupByCategory_UncategorizedOmitidaSiVacia(t *testing.T) {
	lacteos := entity.Category{ID: "c1", Name: "Lácteos"}
	items := []entity.ItemWithRelations{
		withCategories(item("i1", "Leche", entity.StatusInStock), lacteos),
	}

	grouped := fridge.GroupByCategory(items, []entity.Category{lacteos})

	assert.NotContains(t, grouped, fridge.UncategorizedBucket,
		"la cubeta Uncategorized no debe aparecer si no hay items sin categoría")
}

// ──────────────────────────────────────────────────────────────────────────────
// GroupByStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupByStatus_SoloEstadosPresentes(t *testing.T) {
	items := []entity.ItemWithRelations{
		item("i1", "Leche", entity.StatusInStock),
		item("i2", "Pan", entity.StatusInStock),
		item("i3", "Huevos", entity.StatusLowStock),
	}

	grouped := fridge.GroupByStatus(items)

	assert.Len(t, grouped, 2, "solo deben aparecer cubetas para estados presentes")
	assert.Len(t, grouped[entity.StatusInStock], 2)
	assert.Len(t, grouped[entity.StatusLowStock], 1)
	assert.NotContains(t, grouped, entity.StatusExpired)
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock — tres señales en OR
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_CantidadBajoMinimo(t *testing.T) {
	it := item("i1", "Leche", entity.StatusInStock)
	it.Quantity = qty("1")
	it.MinQuantity = qty("2")

	low := fridge.LowStock([]entity.ItemWithRelations{it})

	require.Len(t, low, 1, "quantity <= min_quantity debe contar como stock bajo")
}

func TestLowStock_CantidadIgualAlMinimoCuenta(t *testing.T) {
	it := item("i1", "Leche", entity.StatusInStock)
	it.Quantity = qty("2")
	it.MinQuantity = qty("2")

	low := fridge.LowStock([]entity.ItemWithRelations{it})

	require.Len(t, low, 1, "la comparación es <=, el empate cuenta")
}

func TestLowStock_StatusBastaSinCantidades(t *testing.T) {
	// Sin quantity ni min_quantity: decide solo el status.
	items := []entity.ItemWithRelations{
		item("i1", "Pan", entity.StatusLowStock),
		item("i2", "Café", entity.StatusOutOfStock),
		item("i3", "Leche", entity.StatusInStock),
	}

	low := fridge.LowStock(items)

	require.Len(t, low, 2)
	assert.Equal(t, "i1", low[0].ID)
	assert.Equal(t, "i2", low[1].ID)
}

func TestLowStock_CantidadNulaNoDispara(t *testing.T) {
	it := item("i1", "Leche", entity.StatusInStock)
	it.MinQuantity = qty("5") // quantity nula

	low := fridge.LowStock([]entity.ItemWithRelations{it})

	assert.Empty(t, low, "con quantity nula la señal de cantidades no aplica")
}

func TestLowStock_SiempreSliceNoNil(t *testing.T) {
	assert.NotNil(t, fridge.LowStock(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// ExpiringSoon — ventana inclusiva [now, now+7d]
// ──────────────────────────────────────────────────────────────────────────────

func TestExpiringSoon_VentanaInclusiva(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	enVentana := withExpiration(item("i1", "Yogur", entity.StatusInStock), now.Add(3*24*time.Hour))
	justoHoy := withExpiration(item("i2", "Leche", entity.StatusInStock), now)
	justoLimite := withExpiration(item("i3", "Queso", entity.StatusInStock), now.Add(fridge.ExpiringWindow))
	caducado := withExpiration(item("i4", "Pan", entity.StatusInStock), now.Add(-24*time.Hour))
	lejano := withExpiration(item("i5", "Café", entity.StatusInStock), now.Add(8*24*time.Hour))
	sinFecha := item("i6", "Sal", entity.StatusInStock)

	expiring := fridge.ExpiringSoon(
		[]entity.ItemWithRelations{enVentana, justoHoy, justoLimite, caducado, lejano, sinFecha}, now)

	require.Len(t, expiring, 3)
	ids := []string{expiring[0].ID, expiring[1].ID, expiring[2].ID}
	assert.ElementsMatch(t, []string{"i1", "i2", "i3"}, ids,
		"ambos extremos de la ventana son inclusivos; caducados y lejanos quedan fuera")
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStats — subcontadores por status almacenado
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStats_UsaSoloStatusAlmacenado(t *testing.T) {
	// Item bajo mínimo por cantidades pero con status in_stock:
	// cuenta para LowStock (vista) pero NO para el subcontador de stats.
	bajoMinimo := item("i1", "Leche", entity.StatusInStock)
	bajoMinimo.Quantity = qty("1")
	bajoMinimo.MinQuantity = qty("3")

	items := []entity.ItemWithRelations{
		bajoMinimo,
		item("i2", "Pan", entity.StatusLowStock),
		item("i3", "Yogur", entity.StatusExpired),
		item("i4", "Café", entity.StatusOutOfStock),
	}

	s := fridge.ComputeStats(items)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.LowStock, "el subcontador ignora la heurística de cantidades")
	assert.Equal(t, 1, s.Expired)
	assert.Equal(t, 1, s.OutOfStock)

	assert.Len(t, fridge.LowStock(items), 3, "la vista LowStock sí aplica las tres señales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter — criterios conjuntivos con centinela "all"
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_AllDesactivaCriterio(t *testing.T) {
	items := []entity.ItemWithRelations{
		item("i1", "Leche", entity.StatusInStock),
		item("i2", "Pan", entity.StatusLowStock),
	}

	matched := fridge.Filter(items, fridge.Criteria{Status: fridge.FilterAll, Category: fridge.FilterAll})

	assert.Len(t, matched, 2)
}

func TestFilter_StatusExacto(t *testing.T) {
	items := []entity.ItemWithRelations{
		item("i1", "Leche", entity.StatusInStock),
		item("i2", "Pan", entity.StatusLowStock),
	}

	matched := fridge.Filter(items, fridge.Criteria{Status: entity.StatusLowStock})

	require.Len(t, matched, 1)
	assert.Equal(t, "i2", matched[0].ID)
}

func TestFilter_BusquedaCaseInsensitiveEnNombreODescripcion(t *testing.T) {
	conDesc := item("i1", "Leche", entity.StatusInStock)
	conDesc.Description = "Entera de vaca"
	items := []entity.ItemWithRelations{
		conDesc,
		item("i2", "Pan", entity.StatusInStock),
	}

	porNombre := fridge.Filter(items, fridge.Criteria{Search: "LECHE"})
	require.Len(t, porNombre, 1)

	porDescripcion := fridge.Filter(items, fridge.Criteria{Search: "vaca"})
	require.Len(t, porDescripcion, 1)
	assert.Equal(t, "i1", porDescripcion[0].ID)
}

func TestFilter_CriteriosConjuntivos(t *testing.T) {
	lacteos := entity.Category{ID: "c1", Name: "Lácteos"}
	a := withCategories(item("i1", "Leche", entity.StatusLowStock), lacteos)
	b := withCategories(item("i2", "Queso", entity.StatusInStock), lacteos)
	c := item("i3", "Leche condensada", entity.StatusLowStock) // sin categoría

	matched := fridge.Filter([]entity.ItemWithRelations{a, b, c}, fridge.Criteria{
		Status:   entity.StatusLowStock,
		Category: "c1",
		Search:   "leche",
	})

	require.Len(t, matched, 1, "los tres criterios deben cumplirse a la vez")
	assert.Equal(t, "i1", matched[0].ID)
}

func TestFilter_SiempreSliceNoNil(t *testing.T) {
	assert.NotNil(t, fridge.Filter(nil, fridge.Criteria{}))
	assert.NotNil(t, fridge.Filter(
		[]entity.ItemWithRelations{item("i1", "Leche", entity.StatusInStock)},
		fridge.Criteria{Search: "nada-coincide"},
	))
}

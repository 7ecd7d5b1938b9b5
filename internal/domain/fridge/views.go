// Package fridge contiene las vistas derivadas del inventario: agrupaciones,
// detección de stock bajo y caducidad próxima, estadísticas y filtro por
// criterios. Son funciones puras sobre la foto actual de la colección; nunca
// mutan los items y pueden recomputarse cuantas veces haga falta con el mismo
// resultado.
package fridge

import (
	"strings"
	"time"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// UncategorizedBucket es la cubeta reservada para items sin ninguna categoría.
// Solo aparece en la agrupación cuando tiene al menos un item.
const UncategorizedBucket = "Uncategorized"

// ExpiringWindow es la ventana inclusiva de "caduca pronto": [ahora, ahora+7d].
const ExpiringWindow = 7 * 24 * time.Hour

// FilterAll es el valor centinela que desactiva un criterio de filtro.
const FilterAll = "all"

// GroupByCategory agrupa los items por nombre de categoría. Cada categoría
// conocida tiene su cubeta (posiblemente vacía); un item con N categorías
// aparece en las N cubetas. Los items sin ningún join de categoría van a
// UncategorizedBucket, que se omite si queda vacío.
func GroupByCategory(items []entity.ItemWithRelations, categories []entity.Category) map[string][]entity.ItemWithRelations {
	grouped := make(map[string][]entity.ItemWithRelations, len(categories)+1)

	for _, cat := range categories {
		bucket := []entity.ItemWithRelations{}
		for _, item := range items {
			if item.HasCategory(cat.ID) {
				bucket = append(bucket, item)
			}
		}
		grouped[cat.Name] = bucket
	}

	var uncategorized []entity.ItemWithRelations
	for _, item := range items {
		if len(item.Categories) == 0 {
			uncategorized = append(uncategorized, item)
		}
	}
	if len(uncategorized) > 0 {
		grouped[UncategorizedBucket] = uncategorized
	}

	return grouped
}

// GroupByStatus particiona los items por su campo status almacenado.
// Solo aparecen cubetas para los estados presentes en la colección.
func GroupByStatus(items []entity.ItemWithRelations) map[string][]entity.ItemWithRelations {
	grouped := make(map[string][]entity.ItemWithRelations)
	for _, item := range items {
		grouped[item.Status] = append(grouped[item.Status], item)
	}
	return grouped
}

// LowStock devuelve los items con stock bajo. Tres señales en OR, ninguna
// prevalece sobre las otras:
//   - quantity y min_quantity no nulos y quantity <= min_quantity
//   - status == low_stock
//   - status == out_of_stock
func LowStock(items []entity.ItemWithRelations) []entity.ItemWithRelations {
	low := []entity.ItemWithRelations{}
	for _, item := range items {
		belowMin := item.Quantity.Valid && item.MinQuantity.Valid &&
			item.Quantity.Decimal.LessThanOrEqual(item.MinQuantity.Decimal)
		if belowMin || item.Status == entity.StatusLowStock || item.Status == entity.StatusOutOfStock {
			low = append(low, item)
		}
	}
	return low
}

// ExpiringSoon devuelve los items cuya fecha de caducidad cae en la ventana
// inclusiva [now, now+7d]. Los ya caducados (fecha < now) quedan fuera: esos
// se ven bajo status=expired si están marcados, y ambas vistas no tienen por
// qué coincidir.
func ExpiringSoon(items []entity.ItemWithRelations, now time.Time) []entity.ItemWithRelations {
	limit := now.Add(ExpiringWindow)
	expiring := []entity.ItemWithRelations{}
	for _, item := range items {
		if item.ExpirationDate == nil {
			continue
		}
		exp := *item.ExpirationDate
		if !exp.Before(now) && !exp.After(limit) {
			expiring = append(expiring, item)
		}
	}
	return expiring
}

// Stats estadísticas agregadas del inventario. Los tres subcontadores usan
// exclusivamente el status almacenado, no la heurística de cantidades de
// LowStock; la asimetría viene del comportamiento original y se mantiene.
type Stats struct {
	Total      int
	LowStock   int
	Expired    int
	OutOfStock int
}

// ComputeStats calcula las estadísticas sobre la colección actual.
func ComputeStats(items []entity.ItemWithRelations) Stats {
	s := Stats{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case entity.StatusLowStock:
			s.LowStock++
		case entity.StatusExpired:
			s.Expired++
		case entity.StatusOutOfStock:
			s.OutOfStock++
		}
	}
	return s
}

// Criteria criterios conjuntivos para Filter. Un campo vacío o con el
// centinela "all" (status y category) no restringe.
type Criteria struct {
	Status   string
	Category string // ID de categoría
	Search   string
}

// Filter aplica los criterios en conjunción sobre los items:
//   - status: igualdad exacta salvo vacío o "all"
//   - search: substring case-insensitive contra name O description
//   - category: el item debe tener un join con esa categoría, salvo vacío o "all"
//
// Devuelve siempre un slice no nil, también sin items o sin coincidencias.
func Filter(items []entity.ItemWithRelations, c Criteria) []entity.ItemWithRelations {
	matched := []entity.ItemWithRelations{}
	term := strings.ToLower(c.Search)
	for _, item := range items {
		if c.Status != "" && c.Status != FilterAll && item.Status != c.Status {
			continue
		}
		if term != "" {
			matchesName := strings.Contains(strings.ToLower(item.Name), term)
			matchesDescription := item.Description != "" &&
				strings.Contains(strings.ToLower(item.Description), term)
			if !matchesName && !matchesDescription {
				continue
			}
		}
		if c.Category != "" && c.Category != FilterAll && !item.HasCategory(c.Category) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Item. El estado se guarda tal cual en la DB y NO se
// deriva de quantity vs min_quantity: ambos señales pueden discrepar y las
// vistas derivadas deben tolerarlo, no corregirlo.
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
	StatusExpired    = "expired"
)

// Unidades de medida de la despensa.
const (
	UnitPieces     = "pieces"
	UnitKilogram   = "kilogram"
	UnitGram       = "gram"
	UnitLiter      = "liter"
	UnitMililiter  = "mililiter"
	UnitTableSpoon = "table_spoon"
	UnitTeaSpoon   = "tea_spoon"
)

// ValidStatus indica si s es uno de los estados enumerados.
func ValidStatus(s string) bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock, StatusExpired:
		return true
	}
	return false
}

// Item representa un artículo de la nevera/despensa.
// Quantity y MinQuantity son NUMERIC nullables (decimal.NullDecimal).
type Item struct {
	ID             string
	Name           string
	Description    string // vacío = sin descripción
	Quantity       decimal.NullDecimal
	MinQuantity    decimal.NullDecimal
	Status         string // ver constantes Status*
	Unit           string
	ExpirationDate *time.Time
	PurchaseDate   *time.Time
	ImageURL       string
	Notes          string
	CreatedBy      string // UserID, vacío si anónimo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ItemWithRelations es un Item con sus categorías y etiquetas embebidas
// (resultado del select con relaciones del listado).
type ItemWithRelations struct {
	Item
	Categories []Category
	Tags       []Tag
}

// HasCategory indica si el item tiene un join con la categoría indicada.
func (i *ItemWithRelations) HasCategory(categoryID string) bool {
	for _, c := range i.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

package entity

import "time"

// Category representa una categoría de inventario (eje de clasificación M:N con Item).
// El nombre es único por convención; esta capa no lo impone.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
	Icon        string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemCategory es el registro de asociación Item↔Category, sin payload propio.
// El borrado en cascada al eliminar Item o Category es responsabilidad de la DB.
type ItemCategory struct {
	ID         string
	ItemID     string
	CategoryID string
	CreatedAt  time.Time
}

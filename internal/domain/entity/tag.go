package entity

import "time"

// Tag representa una etiqueta de inventario (segundo eje de clasificación, M:N con Item).
type Tag struct {
	ID          string
	Name        string
	Description string
	Color       string
	CreatedBy   string
	CreatedAt   time.Time
}

// ItemTag es el registro de asociación Item↔Tag, sin payload propio.
type ItemTag struct {
	ID        string
	ItemID    string
	TagID     string
	CreatedAt time.Time
}

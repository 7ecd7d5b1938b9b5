package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items. Solo name es obligatorio.
type CreateItemRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	MinQuantity    *decimal.Decimal `json:"min_quantity,omitempty"`
	Status         string           `json:"status,omitempty"` // default: in_stock
	Unit           string           `json:"unit,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
	PurchaseDate   *time.Time       `json:"purchase_date,omitempty"`
	ImageURL       string           `json:"image_url,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CategoryIDs    []string         `json:"category_ids,omitempty"` // joins iniciales
	TagIDs         []string         `json:"tag_ids,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id (actualización parcial;
// nil = no tocar el campo).
type UpdateItemRequest struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	MinQuantity    *decimal.Decimal `json:"min_quantity,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
	PurchaseDate   *time.Time       `json:"purchase_date,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// ReplaceAssociationsRequest body para PUT /api/items/:id/categories y /tags:
// reemplaza el conjunto completo de asociaciones del item.
type ReplaceAssociationsRequest struct {
	IDs []string `json:"ids"`
}

// ItemResponse representación de un item con sus relaciones embebidas.
type ItemResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Quantity       *decimal.Decimal   `json:"quantity"`
	MinQuantity    *decimal.Decimal   `json:"min_quantity"`
	Status         string             `json:"status"`
	Unit           string             `json:"unit,omitempty"`
	ExpirationDate *time.Time         `json:"expiration_date,omitempty"`
	PurchaseDate   *time.Time         `json:"purchase_date,omitempty"`
	ImageURL       string             `json:"image_url,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	CreatedBy      string             `json:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Categories     []CategoryResponse `json:"categories"`
	Tags           []TagResponse      `json:"tags"`
}

// ItemListResponse respuesta de GET /api/items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

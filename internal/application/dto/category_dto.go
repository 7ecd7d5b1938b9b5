package dto

import "time"

// CreateCategoryRequest body para POST /api/categories. Solo name es obligatorio.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id (parcial).
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse respuesta de GET /api/categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryUsageResponse respuesta de GET /api/categories/:id/usage.
type CategoryUsageResponse struct {
	CategoryID string `json:"category_id"`
	Count      int    `json:"count"`
}

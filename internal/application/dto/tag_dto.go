package dto

import "time"

// CreateTagRequest body para POST /api/tags. Solo name es obligatorio.
type CreateTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// UpdateTagRequest body para PUT /api/tags/:id (parcial).
type UpdateTagRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// TagResponse representación de una etiqueta.
type TagResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TagListResponse respuesta de GET /api/tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

// NewItemResponse mapea un item con relaciones a su representación HTTP.
func NewItemResponse(item entity.ItemWithRelations) ItemResponse {
	categories := make([]CategoryResponse, 0, len(item.Categories))
	for _, c := range item.Categories {
		categories = append(categories, NewCategoryResponse(c))
	}
	tags := make([]TagResponse, 0, len(item.Tags))
	for _, t := range item.Tags {
		tags = append(tags, NewTagResponse(t))
	}
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Quantity:       nullDecimalPtr(item.Quantity),
		MinQuantity:    nullDecimalPtr(item.MinQuantity),
		Status:         item.Status,
		Unit:           item.Unit,
		ExpirationDate: item.ExpirationDate,
		PurchaseDate:   item.PurchaseDate,
		ImageURL:       item.ImageURL,
		Notes:          item.Notes,
		CreatedBy:      item.CreatedBy,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
		Categories:     categories,
		Tags:           tags,
	}
}

// NewItemResponses mapea una colección completa (slice no nil).
func NewItemResponses(items []entity.ItemWithRelations) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemResponse(item))
	}
	return out
}

// NewCategoryResponse mapea una categoría.
func NewCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewTagResponse mapea una etiqueta.
func NewTagResponse(t entity.Tag) TagResponse {
	return TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Color:       t.Color,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

// NewUserResponse mapea un usuario sin exponer el hash.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewRolesResponse mapea el set de roles con sus capacidades derivadas.
func NewRolesResponse(roles entity.RoleSet) RolesResponse {
	names := make([]string, 0, len(roles))
	names = append(names, roles...)
	return RolesResponse{
		Roles:         names,
		IsAdmin:       roles.IsAdmin(),
		IsMember:      roles.IsMember(),
		IsHost:        roles.IsHost(),
		CanEditFridge: roles.CanEditFridge(),
		CanViewFridge: roles.CanViewFridge(),
	}
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

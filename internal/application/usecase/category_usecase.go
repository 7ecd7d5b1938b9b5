package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NewCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Categories: out}, nil
}

// Create crea una categoría. Name es obligatorio.
func (uc *CategoryUseCase) Create(ctx context.Context, createdBy string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(*category)
	return &out, nil
}

// Update actualiza parcialmente una categoría. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	if in.Icon != nil {
		category.Icon = *in.Icon
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(*category)
	return &out, nil
}

// Delete elimina una categoría. Propaga domain.ErrNotFound si el id no existe.
// Los joins item↔categoría caen por cascada en la DB.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// UsageCount cuenta cuántos items usan la categoría.
func (uc *CategoryUseCase) UsageCount(ctx context.Context, id string) (*dto.CategoryUsageResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	count, err := uc.repo.UsageCount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryUsageResponse{CategoryID: id, Count: count}, nil
}

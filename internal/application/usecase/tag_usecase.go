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

// TagUseCase casos de uso CRUD para etiquetas.
type TagUseCase struct {
	repo repository.TagRepository
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(repo repository.TagRepository) *TagUseCase {
	return &TagUseCase{repo: repo}
}

// List lista todas las etiquetas ordenadas por nombre.
func (uc *TagUseCase) List(ctx context.Context) (*dto.TagListResponse, error) {
	tags, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.NewTagResponse(t))
	}
	return &dto.TagListResponse{Tags: out}, nil
}

// Create crea una etiqueta. Name es obligatorio.
func (uc *TagUseCase) Create(ctx context.Context, createdBy string, in dto.CreateTagRequest) (*dto.TagResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	tag := &entity.Tag{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	out := dto.NewTagResponse(*tag)
	return &out, nil
}

// Update actualiza parcialmente una etiqueta. Devuelve (nil, nil) si no existe.
func (uc *TagUseCase) Update(ctx context.Context, id string, in dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		tag.Name = *in.Name
	}
	if in.Description != nil {
		tag.Description = *in.Description
	}
	if in.Color != nil {
		tag.Color = *in.Color
	}
	if err := uc.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	out := dto.NewTagResponse(*tag)
	return &out, nil
}

// Delete elimina una etiqueta. Propaga domain.ErrNotFound si el id no existe.
func (uc *TagUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/homer-api/internal/application/dto"
	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

// ItemTxRunner ejecuta fn con un ItemRepository atado a una transacción.
// Lo usa el reemplazo completo de asociaciones (borrar-todo + reinsertar)
// para cerrar la ventana de fallo parcial del patrón original.
type ItemTxRunner interface {
	RunWithItems(ctx context.Context, fn func(items repository.ItemRepository) error) error
}

// ItemUseCase casos de uso CRUD para items y sus asociaciones.
type ItemUseCase struct {
	repo repository.ItemRepository
	tx   ItemTxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, tx ItemTxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, tx: tx}
}

// List lista items con relaciones embebidas, orden updated_at descendente.
// Los cuatro filtros (status, category, tag, search) se aplican en el servidor.
func (uc *ItemUseCase) List(ctx context.Context, filters repository.ItemFilters) (*dto.ItemListResponse, error) {
	if filters.Status != "" && !entity.ValidStatus(filters.Status) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &dto.ItemListResponse{Items: dto.NewItemResponses(items)}, nil
}

// GetByID obtiene un item por ID. Devuelve (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	out := dto.NewItemResponse(*item)
	return &out, nil
}

// Create crea un item. Name es obligatorio; status por defecto in_stock.
// Si vienen CategoryIDs/TagIDs se insertan los joins iniciales.
func (uc *ItemUseCase) Create(ctx context.Context, createdBy string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusInStock
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Quantity:       toNullDecimal(in.Quantity),
		MinQuantity:    toNullDecimal(in.MinQuantity),
		Status:         status,
		Unit:           in.Unit,
		ExpirationDate: in.ExpirationDate,
		PurchaseDate:   in.PurchaseDate,
		ImageURL:       in.ImageURL,
		Notes:          in.Notes,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	for _, categoryID := range in.CategoryIDs {
		if _, err := uc.repo.AddCategory(ctx, item.ID, categoryID); err != nil {
			return nil, err
		}
	}
	for _, tagID := range in.TagIDs {
		if _, err := uc.repo.AddTag(ctx, item.ID, tagID); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, item.ID)
}

// Update actualiza parcialmente un item. Devuelve (nil, nil) si no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	item := current.Item
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		item.Quantity = decimal.NullDecimal{Decimal: *in.Quantity, Valid: true}
	}
	if in.MinQuantity != nil {
		item.MinQuantity = decimal.NullDecimal{Decimal: *in.MinQuantity, Valid: true}
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		item.Status = *in.Status
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.ExpirationDate != nil {
		item.ExpirationDate = in.ExpirationDate
	}
	if in.PurchaseDate != nil {
		item.PurchaseDate = in.PurchaseDate
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, &item); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un item. Propaga domain.ErrNotFound si el id no existe.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AddCategory asocia una categoría al item.
func (uc *ItemUseCase) AddCategory(ctx context.Context, itemID, categoryID string) error {
	_, err := uc.repo.AddCategory(ctx, itemID, categoryID)
	return err
}

// RemoveCategory quita la asociación item↔categoría.
func (uc *ItemUseCase) RemoveCategory(ctx context.Context, itemID, categoryID string) error {
	return uc.repo.RemoveCategory(ctx, itemID, categoryID)
}

// AddTag asocia una etiqueta al item.
func (uc *ItemUseCase) AddTag(ctx context.Context, itemID, tagID string) error {
	_, err := uc.repo.AddTag(ctx, itemID, tagID)
	return err
}

// RemoveTag quita la asociación item↔etiqueta.
func (uc *ItemUseCase) RemoveTag(ctx context.Context, itemID, tagID string) error {
	return uc.repo.RemoveTag(ctx, itemID, tagID)
}

// ReplaceCategories reemplaza el conjunto completo de categorías del item.
// Borrar-todo + reinsertar dentro de UNA transacción: o se aplica el set
// nuevo completo o no cambia nada.
func (uc *ItemUseCase) ReplaceCategories(ctx context.Context, itemID string, categoryIDs []string) error {
	item, err := uc.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunWithItems(ctx, func(items repository.ItemRepository) error {
		if err := items.RemoveAllCategories(ctx, itemID); err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			if _, err := items.AddCategory(ctx, itemID, categoryID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceTags reemplaza el conjunto completo de etiquetas del item (transaccional).
func (uc *ItemUseCase) ReplaceTags(ctx context.Context, itemID string, tagIDs []string) error {
	item, err := uc.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunWithItems(ctx, func(items repository.ItemRepository) error {
		if err := items.RemoveAllTags(ctx, itemID); err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if _, err := items.AddTag(ctx, itemID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

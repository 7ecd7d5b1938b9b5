package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, COALESCE(description, ''), quantity, min_quantity, status,
	COALESCE(unit, ''), expiration_date, purchase_date, COALESCE(image_url, ''),
	COALESCE(notes, ''), COALESCE(created_by::text, ''), created_at, updated_at`

// List devuelve los items con relaciones embebidas, ordenados por updated_at
// descendente. Los cuatro filtros se aplican en el servidor; category y tag
// vía EXISTS sobre las tablas de join.
func (r *ItemRepo) List(ctx context.Context, filters repository.ItemFilters) ([]entity.ItemWithRelations, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR EXISTS (
			SELECT 1 FROM inventory_item_categories ic
			WHERE ic.item_id = inventory_items.id AND ic.category_id::text = $3))
		  AND ($4 = '' OR EXISTS (
			SELECT 1 FROM inventory_item_tags it
			WHERE it.item_id = inventory_items.id AND it.tag_id::text = $4))
		ORDER BY updated_at DESC`
	rows, err := r.q.Query(ctx, query, filters.Status, filters.Search, filters.Category, filters.Tag)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []entity.ItemWithRelations
	var ids []string
	for rows.Next() {
		var it entity.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, entity.ItemWithRelations{Item: it})
		ids = append(ids, it.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachRelations(ctx, items, ids); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID obtiene un item con relaciones. Devuelve (nil, nil) si no hay fila.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.ItemWithRelations, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	var it entity.Item
	if err := scanItem(r.q.QueryRow(ctx, query, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	items := []entity.ItemWithRelations{{Item: it}}
	if err := r.attachRelations(ctx, items, []string{it.ID}); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO inventory_items (id, name, description, quantity, min_quantity, status, unit,
			expiration_date, purchase_date, image_url, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, nullIfEmpty(item.Description), item.Quantity, item.MinQuantity,
		item.Status, nullIfEmpty(item.Unit), item.ExpirationDate, item.PurchaseDate,
		nullIfEmpty(item.ImageURL), nullIfEmpty(item.Notes), nullIfEmpty(item.CreatedBy),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update actualiza un item existente. ErrNotFound si el id no existe.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, quantity = $4, min_quantity = $5, status = $6, unit = $7,
			expiration_date = $8, purchase_date = $9, image_url = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Name, nullIfEmpty(item.Description), item.Quantity, item.MinQuantity,
		item.Status, nullIfEmpty(item.Unit), item.ExpirationDate, item.PurchaseDate,
		nullIfEmpty(item.ImageURL), nullIfEmpty(item.Notes), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un item. ErrNotFound si el id no existe.
// Los joins caen por cascada (ON DELETE CASCADE en la DB).
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddCategory inserta el join item↔categoría.
func (r *ItemRepo) AddCategory(ctx context.Context, itemID, categoryID string) (*entity.ItemCategory, error) {
	join := &entity.ItemCategory{
		ID:         uuid.New().String(),
		ItemID:     itemID,
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO inventory_item_categories (id, item_id, category_id, created_at) VALUES ($1, $2, $3, $4)`,
		join.ID, join.ItemID, join.CategoryID, join.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert item category: %w", err)
	}
	return join, nil
}

// RemoveCategory borra el join item↔categoría; sin error si no existía.
func (r *ItemRepo) RemoveCategory(ctx context.Context, itemID, categoryID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM inventory_item_categories WHERE item_id = $1 AND category_id = $2`,
		itemID, categoryID,
	)
	if err != nil {
		return fmt.Errorf("delete item category: %w", err)
	}
	return nil
}

// AddTag inserta el join item↔etiqueta.
func (r *ItemRepo) AddTag(ctx context.Context, itemID, tagID string) (*entity.ItemTag, error) {
	join := &entity.ItemTag{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO inventory_item_tags (id, item_id, tag_id, created_at) VALUES ($1, $2, $3, $4)`,
		join.ID, join.ItemID, join.TagID, join.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert item tag: %w", err)
	}
	return join, nil
}

// RemoveTag borra el join item↔etiqueta; sin error si no existía.
func (r *ItemRepo) RemoveTag(ctx context.Context, itemID, tagID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM inventory_item_tags WHERE item_id = $1 AND tag_id = $2`,
		itemID, tagID,
	)
	if err != nil {
		return fmt.Errorf("delete item tag: %w", err)
	}
	return nil
}

// RemoveAllCategories borra todos los joins de categoría del item.
func (r *ItemRepo) RemoveAllCategories(ctx context.Context, itemID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_item_categories WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete item categories: %w", err)
	}
	return nil
}

// RemoveAllTags borra todos los joins de etiqueta del item.
func (r *ItemRepo) RemoveAllTags(ctx context.Context, itemID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_item_tags WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete item tags: %w", err)
	}
	return nil
}

// attachRelations carga en bloque las categorías y etiquetas de los items dados.
func (r *ItemRepo) attachRelations(ctx context.Context, items []entity.ItemWithRelations, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	index := make(map[string]int, len(items))
	for i := range items {
		index[items[i].ID] = i
	}

	catQuery := `
		SELECT ic.item_id, c.id, c.name, COALESCE(c.description, ''), COALESCE(c.color, ''),
			COALESCE(c.icon, ''), COALESCE(c.created_by::text, ''), c.created_at, c.updated_at
		FROM inventory_item_categories ic
		JOIN inventory_categories c ON c.id = ic.category_id
		WHERE ic.item_id = ANY($1)
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, catQuery, ids)
	if err != nil {
		return fmt.Errorf("list item categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var c entity.Category
		if err := rows.Scan(&itemID, &c.ID, &c.Name, &c.Description, &c.Color, &c.Icon,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("scan item category: %w", err)
		}
		if i, ok := index[itemID]; ok {
			items[i].Categories = append(items[i].Categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tagQuery := `
		SELECT it.item_id, t.id, t.name, COALESCE(t.description, ''), COALESCE(t.color, ''),
			COALESCE(t.created_by::text, ''), t.created_at
		FROM inventory_item_tags it
		JOIN inventory_tags t ON t.id = it.tag_id
		WHERE it.item_id = ANY($1)
		ORDER BY t.name`
	rows, err = r.q.Query(ctx, tagQuery, ids)
	if err != nil {
		return fmt.Errorf("list item tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var t entity.Tag
		if err := rows.Scan(&itemID, &t.ID, &t.Name, &t.Description, &t.Color,
			&t.CreatedBy, &t.CreatedAt); err != nil {
			return fmt.Errorf("scan item tag: %w", err)
		}
		if i, ok := index[itemID]; ok {
			items[i].Tags = append(items[i].Tags, t)
		}
	}
	return rows.Err()
}

func scanItem(row pgx.Row, it *entity.Item) error {
	return row.Scan(
		&it.ID, &it.Name, &it.Description, &it.Quantity, &it.MinQuantity, &it.Status,
		&it.Unit, &it.ExpirationDate, &it.PurchaseDate, &it.ImageURL,
		&it.Notes, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt,
	)
}

// nullIfEmpty convierte "" a NULL para columnas nullables (incluidos los uuid FK).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

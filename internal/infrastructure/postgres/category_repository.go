package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/homer-api/internal/domain"
	"github.com/jhoicas/homer-api/internal/domain/entity"
	"github.com/jhoicas/homer-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, COALESCE(description, ''), COALESCE(color, ''),
	COALESCE(icon, ''), COALESCE(created_by::text, ''), created_at, updated_at`

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM inventory_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID devuelve (nil, nil) si no hay fila.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM inventory_categories WHERE id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO inventory_categories (id, name, description, color, icon, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, nullIfEmpty(category.Description), nullIfEmpty(category.Color),
		nullIfEmpty(category.Icon), nullIfEmpty(category.CreatedBy), category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE inventory_categories
		SET name = $2, description = $3, color = $4, icon = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.ID, category.Name, nullIfEmpty(category.Description),
		nullIfEmpty(category.Color), nullIfEmpty(category.Icon), category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la categoría; los joins item↔categoría caen por cascada.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UsageCount cuenta cuántos items referencian la categoría.
func (r *CategoryRepo) UsageCount(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_item_categories WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count category usage: %w", err)
	}
	return count, nil
}

func scanCategory(row pgx.Row, c *entity.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.Icon,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
}

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

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación del puerto TagRepository sobre PostgreSQL.
type TagRepo struct {
	q Querier
}

func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

const tagColumns = `id, name, COALESCE(description, ''), COALESCE(color, ''),
	COALESCE(created_by::text, ''), created_at`

// List devuelve todas las etiquetas ordenadas por nombre.
func (r *TagRepo) List(ctx context.Context) ([]entity.Tag, error) {
	rows, err := r.q.Query(ctx, `SELECT `+tagColumns+` FROM inventory_tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := scanTag(rows, &t); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetByID devuelve (nil, nil) si no hay fila.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	var t entity.Tag
	err := scanTag(r.q.QueryRow(ctx, `SELECT `+tagColumns+` FROM inventory_tags WHERE id = $1`, id), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

func (r *TagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	query := `
		INSERT INTO inventory_tags (id, name, description, color, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		tag.ID, tag.Name, nullIfEmpty(tag.Description), nullIfEmpty(tag.Color),
		nullIfEmpty(tag.CreatedBy), tag.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *TagRepo) Update(ctx context.Context, tag *entity.Tag) error {
	query := `UPDATE inventory_tags SET name = $2, description = $3, color = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		tag.ID, tag.Name, nullIfEmpty(tag.Description), nullIfEmpty(tag.Color),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la etiqueta; los joins item↔etiqueta caen por cascada.
func (r *TagRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTag(row pgx.Row, t *entity.Tag) error {
	return row.Scan(&t.ID, &t.Name, &t.Description, &t.Color, &t.CreatedBy, &t.CreatedAt)
}

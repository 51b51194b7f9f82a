package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)

	query := `
		INSERT INTO categories (name, description, image_url) VALUES ($1, $2, $3)
		RETURNING id, name, description, image_url, created_at, updated_at;
	`

	var out converter.CategoryModel
	if err := tr.Conn(ctx, c.pool).QueryRow(ctx, query, model.Name, model.Description, model.ImageURL).
		Scan(
			&out.ID, &out.Name, &out.Description, &out.ImageURL, &out.CreatedAt, &out.UpdatedAt,
		); err != nil {
		if isUniqueViolation(err) {
			return nil, e.NewValidationError("name", "category already exists")
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&out), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)

	query := `
		UPDATE categories SET name = $2, description = $3, image_url = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, image_url, created_at, updated_at;
	`

	var out converter.CategoryModel
	err := tr.Conn(ctx, c.pool).QueryRow(ctx, query, model.ID, model.Name, model.Description, model.ImageURL).
		Scan(&out.ID, &out.Name, &out.Description, &out.ImageURL, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NewNotFoundError("category", model.ID.String())
		}
		if isUniqueViolation(err) {
			return nil, e.NewValidationError("name", "category already exists")
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&out), nil
}

// Delete удаляет категорию; у её продуктов category_id становится NULL.
func (c *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := tr.Conn(ctx, c.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.NewNotFoundError("category", id.String())
	}
	return nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM categories WHERE id = $1
	`

	var m converter.CategoryModel
	err := tr.Conn(ctx, c.pool).QueryRow(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Description, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NewNotFoundError("category", id.String())
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&m), nil
}

// List возвращает категории по алфавиту.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM categories ORDER BY name
	`

	rows, err := tr.Conn(ctx, c.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var m converter.CategoryModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, e.Persistence(whereami.WhereAmI(), err)
		}
		result = append(result, *c.conv.ToEntity(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return result, nil
}

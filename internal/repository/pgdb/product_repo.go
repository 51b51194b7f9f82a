package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `
	pr.id, pr.name, pr.description, pr.price, pr.promotional_price, pr.category_id, cat.name,
	pr.image_url, pr.video_url, pr.additional_images, pr.is_featured, pr.created_at, pr.updated_at
`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		INSERT INTO products (name, description, price, promotional_price, category_id,
		                      image_url, video_url, additional_images, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id uuid.UUID
	err := tr.Conn(ctx, p.pool).QueryRow(ctx, query,
		model.Name, model.Description, model.Price, model.PromotionalPrice, model.CategoryID,
		model.ImageURL, model.VideoURL, model.AdditionalImages, model.IsFeatured,
	).Scan(&id)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return p.GetByID(ctx, id)
}

// Update перезаписывает все поля продукта. Отсутствующий продукт — NotFoundError.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		UPDATE products SET
			name = $2, description = $3, price = $4, promotional_price = $5, category_id = $6,
			image_url = $7, video_url = $8, additional_images = $9, is_featured = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := tr.Conn(ctx, p.pool).Exec(ctx, query,
		model.ID, model.Name, model.Description, model.Price, model.PromotionalPrice, model.CategoryID,
		model.ImageURL, model.VideoURL, model.AdditionalImages, model.IsFeatured,
	)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return nil, e.NewNotFoundError("product", model.ID.String())
	}

	return p.GetByID(ctx, model.ID)
}

func (p *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := tr.Conn(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.NewNotFoundError("product", id.String())
	}

	return nil
}

// DeleteAll очищает каталог и возвращает идентификаторы удалённых продуктов.
// Позиции заказов остаются: order_items.product_id обнуляется внешним ключом.
func (p *ProductRepo) DeleteAll(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := tr.Conn(ctx, p.pool).Query(ctx, `DELETE FROM products RETURNING id`)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return ids, nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products pr
		LEFT JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = $1
	`

	model, err := scanProduct(tr.Conn(ctx, p.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NewNotFoundError("product", id.String())
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetByIDs загружает продукты одним запросом. Отсутствующие ID просто не попадают в результат.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	query := `SELECT ` + productColumns + `
		FROM products pr
		LEFT JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1)
	`

	return p.query(ctx, query, ids)
}

// List возвращает продукты, новые первыми.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	query, args, err := productListQuery(filter)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.query(ctx, query, args...)
}

func (p *ProductRepo) query(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := tr.Conn(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, e.Persistence(whereami.WhereAmI(), err)
		}
		models = append(models, *model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var m converter.ProductModel
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.PromotionalPrice, &m.CategoryID, &m.CategoryName,
		&m.ImageURL, &m.VideoURL, &m.AdditionalImages, &m.IsFeatured, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

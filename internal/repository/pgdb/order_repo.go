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

const orderColumns = `id, customer_name, customer_phone, delivery_location, total_amount, status, created_at, updated_at`

// OrderRepo хранит заказы и их позиции в PostgreSQL.
// Create и CreateItems рассчитаны на вызов внутри одной транзакции из контекста.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

// Create вставляет шапку заказа и возвращает её с временем создания из БД.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	model := o.conv.ToModel(order)

	query := `
		INSERT INTO orders (id, customer_name, customer_phone, delivery_location, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + orderColumns

	out, err := scanOrder(tr.Conn(ctx, o.pool).QueryRow(ctx, query,
		model.ID, model.CustomerName, model.CustomerPhone, model.DeliveryLocation, model.TotalAmount, model.Status,
	))
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(out, nil), nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	model, err := scanOrder(tr.Conn(ctx, o.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NewNotFoundError("order", id.String())
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	items, err := o.itemsByOrderIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	return o.conv.ToEntity(model, items[id]), nil
}

// List возвращает страницу заказов (новые первыми) и общее число заказов под фильтром.
func (o *OrderRepo) List(ctx context.Context, filter usecase.OrderFilter) ([]domain.Order, int64, error) {
	pageQuery, countQuery := orderListQueries(filter)
	conn := tr.Conn(ctx, o.pool)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	var total int64
	if err := conn.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, e.Persistence(whereami.WhereAmI(), err)
	}

	pageSQL, pageArgs, err := pageQuery.ToSql()
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	rows, err := conn.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, e.Persistence(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.OrderModel, 0, filter.Limit)
	ids := make([]uuid.UUID, 0, filter.Limit)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, 0, e.Persistence(whereami.WhereAmI(), err)
		}
		models = append(models, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Persistence(whereami.WhereAmI(), err)
	}
	rows.Close()

	items, err := o.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	orders := make([]domain.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, *o.conv.ToEntity(m, items[m.ID]))
	}

	return orders, total, nil
}

// UpdateStatus меняет статус заказа. Отсутствующий заказ — NotFoundError.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := tr.Conn(ctx, o.pool).Exec(ctx, query, id, status.String())
	if err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.NewNotFoundError("order", id.String())
	}

	return nil
}

func scanOrder(row pgx.Row) (*converter.OrderModel, error) {
	var m converter.OrderModel
	err := row.Scan(
		&m.ID, &m.CustomerName, &m.CustomerPhone, &m.DeliveryLocation,
		&m.TotalAmount, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

package pgdb

import (
	"context"
	"fmt"
	"math"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

// CreateItems вставляет все позиции заказа одним запросом, сохраняя их порядок.
func (o *OrderRepo) CreateItems(ctx context.Context, orderID uuid.UUID, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	var (
		ids        = make([]uuid.UUID, 0, len(items))
		productIDs = make([]*uuid.UUID, 0, len(items))
		names      = make([]string, 0, len(items))
		quantities = make([]int32, 0, len(items))
		prices     = make([]int64, 0, len(items))
	)
	for _, it := range items {
		q, err := toInt32Quantity(it.Quantity)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		ids = append(ids, it.ID)
		productIDs = append(productIDs, it.ProductID)
		names = append(names, it.ProductName)
		quantities = append(quantities, q)
		prices = append(prices, it.Price)
	}

	query := `
		INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price, position)
		SELECT u.id, $1, u.product_id, u.product_name, u.quantity, u.price, u.position
		FROM unnest($2::uuid[], $3::uuid[], $4::text[], $5::int[], $6::bigint[])
			WITH ORDINALITY AS u(id, product_id, product_name, quantity, price, position)
	`

	tag, err := tr.Conn(ctx, o.pool).Exec(ctx, query, orderID, ids, productIDs, names, quantities, prices)
	if err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	if int(tag.RowsAffected()) != len(items) {
		return e.Persistence(whereami.WhereAmI(), errPartialInsert)
	}

	return nil
}

// toInt32Quantity приводит количество к типу колонки INTEGER без усечения.
func toInt32Quantity(q int) (int32, error) {
	if q < 1 || q > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", errQuantityOutOfRange, q)
	}
	return int32(q), nil
}

// itemsByOrderIDs загружает позиции сразу для нескольких заказов.
// Картинка товара подтягивается, только если товар ещё есть в каталоге.
func (o *OrderRepo) itemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]converter.OrderItemModel, error) {
	result := make(map[uuid.UUID][]converter.OrderItemModel, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.product_name, oi.quantity, oi.price, pr.image_url
		FROM order_items oi
		LEFT JOIN products pr ON pr.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position
	`

	rows, err := tr.Conn(ctx, o.pool).Query(ctx, query, orderIDs)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var m converter.OrderItemModel
		if err := rows.Scan(
			&m.ID, &m.OrderID, &m.ProductID, &m.ProductName, &m.Quantity, &m.Price, &m.ProductImageURL,
		); err != nil {
			return nil, e.Persistence(whereami.WhereAmI(), err)
		}
		result[m.OrderID] = append(result[m.OrderID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return result, nil
}

package pgdb

import (
	"github.com/DRSN-tech/storefront/internal/usecase"
	sq "github.com/Masterminds/squirrel"
)

// psql собирает запросы с плейсхолдерами $n для pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func productListQuery(filter usecase.ProductFilter) (string, []any, error) {
	q := psql.Select(productColumns).
		From("products pr").
		LeftJoin("categories cat ON pr.category_id = cat.id").
		OrderBy("pr.created_at DESC")

	if filter.CategoryID != nil {
		q = q.Where(sq.Eq{"pr.category_id": *filter.CategoryID})
	}
	if filter.FeaturedOnly {
		q = q.Where("pr.is_featured")
	}

	return q.ToSql()
}

// orderListQueries возвращает запрос страницы и запрос общего числа под тем же фильтром.
func orderListQueries(filter usecase.OrderFilter) (page, count sq.SelectBuilder) {
	page = psql.Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	count = psql.Select("COUNT(*)").From("orders")

	if filter.Status != nil {
		where := sq.Eq{"status": filter.Status.String()}
		page = page.Where(where)
		count = count.Where(where)
	}
	return page, count
}

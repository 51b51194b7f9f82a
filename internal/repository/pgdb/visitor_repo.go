package pgdb

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type VisitorRepo struct {
	pool *pgxpool.Pool
}

func NewVisitorRepo(pool *pgxpool.Pool) *VisitorRepo {
	return &VisitorRepo{pool: pool}
}

// Track записывает визит; повтор с того же IP в тот же день молча игнорируется.
func (v *VisitorRepo) Track(ctx context.Context, visit *domain.Visit) error {
	query := `
		INSERT INTO visitors (ip_address, user_agent, visit_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (ip_address, visit_date) DO NOTHING
	`

	if _, err := tr.Conn(ctx, v.pool).Exec(ctx, query, visit.IPAddress, visit.UserAgent, visit.VisitDate); err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	return nil
}

// Stats считает визиты за сегодня, за последние 7 дней и за всё время.
func (v *VisitorRepo) Stats(ctx context.Context, now time.Time) (*domain.VisitorStats, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	weekAgo := today.AddDate(0, 0, -7)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE visit_date >= $1),
			COUNT(*) FILTER (WHERE visit_date >= $2),
			COUNT(*)
		FROM visitors
	`

	var stats domain.VisitorStats
	if err := tr.Conn(ctx, v.pool).QueryRow(ctx, query, today, weekAgo).
		Scan(&stats.Today, &stats.Week, &stats.Total); err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return &stats, nil
}

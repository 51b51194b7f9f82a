package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// AdminRepo проверяет членство пользователя в таблице admins.
type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

func (a *AdminRepo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var ok bool
	err := tr.Conn(ctx, a.pool).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, userID).
		Scan(&ok)
	if err != nil {
		return false, e.Persistence(whereami.WhereAmI(), err)
	}
	return ok, nil
}

package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const (
	// pendingClaim лежит в ключе, пока заказ ещё создаётся.
	pendingClaim = "pending"
	// claimTTL ограничивает жизнь незавершённой заявки, если процесс упал посреди запроса.
	claimTTL = time.Minute
)

// IdempotencyRepo помнит, какой заказ был создан для Idempotency-Key.
type IdempotencyRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewIdempotencyRepo(client *clients.RedisClient, cfg *cfg.RedisCfg) *IdempotencyRepo {
	return &IdempotencyRepo{client: client, cfg: cfg}
}

// Claim атомарно занимает ключ через SET NX. Если ключ занят, отдаёт сохранённый ID заказа
// или uuid.Nil, пока первый запрос не завершён.
func (i *IdempotencyRepo) Claim(ctx context.Context, key string) (bool, uuid.UUID, error) {
	rk := idempotencyKey(key)

	ok, err := i.client.Client.SetNX(ctx, rk, pendingClaim, claimTTL).Result()
	if err != nil {
		return false, uuid.Nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if ok {
		return true, uuid.Nil, nil
	}

	val, err := i.client.Client.Get(ctx, rk).Result()
	if err != nil {
		// Заявка истекла между SET NX и GET: клиент повторит запрос.
		if errors.Is(err, goredis.Nil) {
			return false, uuid.Nil, nil
		}
		return false, uuid.Nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return parseClaim(val)
}

// Complete заменяет заявку на ID созданного заказа.
func (i *IdempotencyRepo) Complete(ctx context.Context, key string, orderID uuid.UUID) error {
	if err := i.client.Client.Set(ctx, idempotencyKey(key), orderID.String(), i.cfg.IdempotencyTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

// Release снимает заявку, если заказ создать не удалось.
func (i *IdempotencyRepo) Release(ctx context.Context, key string) error {
	if err := i.client.Client.Del(ctx, idempotencyKey(key)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func parseClaim(val string) (bool, uuid.UUID, error) {
	if val == pendingClaim {
		return false, uuid.Nil, nil
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return false, uuid.Nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return false, id, nil
}

// Ключ клиента хэшируется, чтобы произвольная строка не попадала в пространство ключей Redis.
func idempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "idempotency:order:" + hex.EncodeToString(sum[:])
}

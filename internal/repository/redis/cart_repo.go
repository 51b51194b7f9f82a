package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзину сессии одним JSON-значением.
// TTL продлевается при каждой записи, так что брошенные корзины истекают сами.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{client: client, conv: conv, cfg: cfg, logger: logger}
}

func (c *CartRepo) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Cart, error) {
	data, err := c.client.Client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.NewCart(), nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		// битая корзина не должна блокировать покупателя
		c.logger.Warnf("Dropping unreadable cart %s: %v", sessionID, e.Wrap(whereami.WhereAmI(), err))
		return domain.NewCart(), nil
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CartRepo) Save(ctx context.Context, sessionID uuid.UUID, cart *domain.Cart) error {
	data, err := json.Marshal(c.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, cartKey(sessionID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (c *CartRepo) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := c.client.Client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func cartKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/google/uuid"
)

// TxManager выполняет fn в одной транзакции хранилища.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateItems(ctx context.Context, orderID uuid.UUID, items []domain.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
}

type AdminRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type WhatsAppRepository interface {
	// GetActive возвращает nil без ошибки, если активной настройки нет.
	GetActive(ctx context.Context) (*domain.WhatsAppConfig, error)
	DeactivateAll(ctx context.Context) error
	Create(ctx context.Context, config *domain.WhatsAppConfig) (*domain.WhatsAppConfig, error)
}

type HeroVideoRepository interface {
	// Get возвращает nil без ошибки, если видео не задано.
	Get(ctx context.Context) (*domain.HeroVideo, error)
	Upsert(ctx context.Context, videoURL string) (*domain.HeroVideo, error)
	Delete(ctx context.Context) error
}

type VisitorRepository interface {
	Track(ctx context.Context, visit *domain.Visit) error
	Stats(ctx context.Context, now time.Time) (*domain.VisitorStats, error)
}

type ProductCacheRepository interface {
	GetProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []uuid.UUID) error
}

type CartRepository interface {
	// Get возвращает пустую корзину, если для сессии ничего не сохранено.
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Cart, error)
	Save(ctx context.Context, sessionID uuid.UUID, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type IdempotencyRepository interface {
	// Claim занимает ключ до создания заказа. Если ключ уже занят, claimed=false,
	// а orderID содержит сохранённый заказ или uuid.Nil, пока первый запрос не завершён.
	Claim(ctx context.Context, key string) (claimed bool, orderID uuid.UUID, err error)
	Complete(ctx context.Context, key string, orderID uuid.UUID) error
	Release(ctx context.Context, key string) error
}

type MediaRepository interface {
	Upload(ctx context.Context, media *domain.Media) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

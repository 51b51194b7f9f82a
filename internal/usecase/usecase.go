package usecase

import (
	"context"
	"io"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/google/uuid"
)

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error)
	ListOrders(ctx context.Context, req *ListOrdersReq) (*ListOrdersRes, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	SetStatus(ctx context.Context, req *SetStatusReq) (*domain.Order, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID, productID uuid.UUID) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID uuid.UUID, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID uuid.UUID) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
	Checkout(ctx context.Context, req *CheckoutReq) (*CreateOrderRes, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	CreateProduct(ctx context.Context, in *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in *ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ResetProducts(ctx context.Context) (int, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	CreateCategory(ctx context.Context, in *CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in *CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ExportFacebookCatalog(ctx context.Context, w io.Writer) error
}

type SettingsUC interface {
	GetWhatsApp(ctx context.Context) (*domain.WhatsAppConfig, error)
	SetWhatsApp(ctx context.Context, req *SetWhatsAppReq) (*domain.WhatsAppConfig, error)
	GetHeroVideo(ctx context.Context) (*domain.HeroVideo, error)
	SetHeroVideo(ctx context.Context, videoURL string) (*domain.HeroVideo, error)
	DeleteHeroVideo(ctx context.Context) error
}

type VisitorUC interface {
	Track(ctx context.Context, req *TrackVisitReq) error
	Stats(ctx context.Context) (*domain.VisitorStats, error)
}

type MediaUC interface {
	Upload(ctx context.Context, folder string, files []MediaFile) ([]string, error)
}

type ConversionUC interface {
	Track(ctx context.Context, req *TrackConversionReq) error
}

// AdminChecker проверяет принадлежность пользователя к администраторам.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

package usecase

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/google/uuid"
)

// ORDER USECASE

// CreateOrderReq — заказ в том виде, в каком его прислал клиент.
// Идентификаторы товаров приходят строками и проверяются вместе с остальными полями.
type CreateOrderReq struct {
	CustomerName     string
	CustomerPhone    string
	DeliveryLocation string
	Items            []OrderItemReq
	IdempotencyKey   string
}

type OrderItemReq struct {
	ProductID string
	Quantity  int
}

// CreateOrderRes — созданный заказ. Replayed выставляется, если заказ вернули по Idempotency-Key.
type CreateOrderRes struct {
	Order    *domain.Order
	Replayed bool
}

// ListOrdersReq — nil в Page/Limit означает значение по умолчанию.
type ListOrdersReq struct {
	Status string
	Page   *int
	Limit  *int
}

type ListOrdersRes struct {
	Orders []domain.Order
	Page   int
	Limit  int
	Total  int64
}

type SetStatusReq struct {
	OrderID uuid.UUID
	Status  string
}

// CART USECASE

type CheckoutReq struct {
	SessionID        uuid.UUID
	CustomerName     string
	CustomerPhone    string
	DeliveryLocation string
	IdempotencyKey   string
}

// CATALOG USECASE

// ProductInput — поля товара из админки. Цены приходят строками и разбираются через decimal.
type ProductInput struct {
	Name             string
	Description      string
	Price            string
	PromotionalPrice *string
	CategoryID       *string
	ImageURL         *string
	VideoURL         *string
	AdditionalImages []string
	IsFeatured       bool
}

type CategoryInput struct {
	Name        string
	Description *string
	ImageURL    *string
}

// SETTINGS USECASE

type SetWhatsAppReq struct {
	PhoneNumber     string
	MessageTemplate string
}

type TrackVisitReq struct {
	IPAddress string
	UserAgent string
}

// MEDIA

// MediaFile — файл, загруженный через multipart/form-data.
type MediaFile struct {
	Data     []byte // содержимое файла
	MimeType string // определённый по содержимому тип
	Size     int64
	Name     string // оригинальное имя файла (для логов)
}

type UploadMediaReq struct {
	Prefix string
	Files  []MediaFile
}

// UploadMediaRes — ключи загруженных объектов в порядке входных файлов.
type UploadMediaRes struct {
	Keys []string
}

// CONVERSIONS

type ConversionEventName string

const (
	ConversionPageView    ConversionEventName = "PageView"
	ConversionViewContent ConversionEventName = "ViewContent"
	ConversionAddToCart   ConversionEventName = "AddToCart"
	ConversionPurchase    ConversionEventName = "Purchase"
)

// TrackConversionReq — событие витрины для рекламного пикселя.
type TrackConversionReq struct {
	EventName      ConversionEventName
	EventSourceURL string
	ClientIP       string
	UserAgent      string
	Email          string
	Phone          string
	ContentIDs     []string
	ContentName    string
	Value          int64
	Currency       string
	NumItems       int
}

// ConversionEvent — то, что уходит во внешний API конверсий.
type ConversionEvent struct {
	EventID        string
	EventName      ConversionEventName
	EventTime      int64
	EventSourceURL string
	ClientIP       string
	UserAgent      string
	Email          string
	Phone          string
	ContentIDs     []string
	ContentName    string
	Value          int64
	Currency       string
	NumItems       int
}

// FILTERS

type ProductFilter struct {
	CategoryID   *uuid.UUID
	FeaturedOnly bool
}

type OrderFilter struct {
	Status *domain.OrderStatus
	Limit  int
	Offset int
}

// MAPPERS

func NewCreateOrderRes(order *domain.Order, replayed bool) *CreateOrderRes {
	return &CreateOrderRes{Order: order, Replayed: replayed}
}

func NewListOrdersRes(orders []domain.Order, page, limit int, total int64) *ListOrdersRes {
	return &ListOrdersRes{
		Orders: orders,
		Page:   page,
		Limit:  limit,
		Total:  total,
	}
}

func NewUploadMediaReq(prefix string, files []MediaFile) *UploadMediaReq {
	return &UploadMediaReq{Prefix: prefix, Files: files}
}

func NewUploadMediaRes(keys []string) *UploadMediaRes {
	return &UploadMediaRes{Keys: keys}
}

func NewMediaFile(data []byte, mimeType string, name string) *MediaFile {
	return &MediaFile{
		Data:     data,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Name:     name,
	}
}

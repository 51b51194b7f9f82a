package converter

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel представляет запись таблицы products в PostgreSQL
// вместе с названием категории из LEFT JOIN.
type ProductModel struct {
	ID               uuid.UUID  `db:"id"`
	Name             string     `db:"name"`
	Description      string     `db:"description"`
	Price            int64      `db:"price"`
	PromotionalPrice *int64     `db:"promotional_price"`
	CategoryID       *uuid.UUID `db:"category_id"`
	CategoryName     *string    `db:"category_name"`
	ImageURL         *string    `db:"image_url"`
	VideoURL         *string    `db:"video_url"`
	AdditionalImages []string   `db:"additional_images"`
	IsFeatured       bool       `db:"is_featured"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	ImageURL    *string    `db:"image_url"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID               uuid.UUID  `db:"id"`
	CustomerName     string     `db:"customer_name"`
	CustomerPhone    string     `db:"customer_phone"`
	DeliveryLocation string     `db:"delivery_location"`
	TotalAmount      int64      `db:"total_amount"`
	Status           string     `db:"status"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// OrderItemModel — позиция заказа и краткие данные товара, если он ещё существует.
type OrderItemModel struct {
	ID              uuid.UUID  `db:"id"`
	OrderID         uuid.UUID  `db:"order_id"`
	ProductID       *uuid.UUID `db:"product_id"`
	ProductName     string     `db:"product_name"`
	Quantity        int        `db:"quantity"`
	Price           int64      `db:"price"`
	ProductImageURL *string    `db:"product_image_url"`
}

type WhatsAppConfigModel struct {
	ID              uuid.UUID `db:"id"`
	PhoneNumber     string    `db:"phone_number"`
	MessageTemplate string    `db:"message_template"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
}

type HeroVideoModel struct {
	ID        uuid.UUID `db:"id"`
	VideoURL  string    `db:"video_url"`
	UpdatedAt time.Time `db:"updated_at"`
}

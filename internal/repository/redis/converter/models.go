package converter

import (
	"time"

	"github.com/google/uuid"
)

// ProductRedisModel — карточка товара в кэше.
type ProductRedisModel struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Price            int64      `json:"price"`
	PromotionalPrice *int64     `json:"promotional_price,omitempty"`
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	CategoryName     string     `json:"category_name,omitempty"`
	ImageURL         *string    `json:"image_url,omitempty"`
	VideoURL         *string    `json:"video_url,omitempty"`
	AdditionalImages []string   `json:"additional_images"`
	IsFeatured       bool       `json:"is_featured"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// CartRedisModel — корзина сессии.
type CartRedisModel struct {
	Lines []CartLineRedisModel `json:"lines"`
}

type CartLineRedisModel struct {
	ProductID        uuid.UUID `json:"product_id"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	PromotionalPrice *int64    `json:"promotional_price,omitempty"`
	ImageURL         *string   `json:"image_url,omitempty"`
	Quantity         int       `json:"quantity"`
}

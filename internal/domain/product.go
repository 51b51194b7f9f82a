package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product описывает товар каталога. Цены хранятся в целых XAF.
type Product struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Price            int64
	PromotionalPrice *int64
	CategoryID       *uuid.UUID
	Category         *CategorySummary
	ImageURL         *string
	VideoURL         *string
	AdditionalImages []string
	IsFeatured       bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// ProductSummary — краткая ссылка на товар внутри позиции заказа.
type ProductSummary struct {
	ID       uuid.UUID
	Name     string
	ImageURL *string
}

func NewProduct(name, description string, price int64, promotionalPrice *int64, categoryID *uuid.UUID) *Product {
	return &Product{
		Name:             name,
		Description:      description,
		Price:            price,
		PromotionalPrice: promotionalPrice,
		CategoryID:       categoryID,
		AdditionalImages: []string{},
	}
}

// EffectivePrice — цена, по которой товар продаётся сейчас.
func (p *Product) EffectivePrice() int64 {
	return EffectivePrice(p.Price, p.PromotionalPrice)
}

// HasDiscount сообщает, действует ли акционная цена.
func (p *Product) HasDiscount() bool {
	return p.EffectivePrice() < p.Price
}

// EffectivePrice возвращает акционную цену, если она задана и ниже обычной.
func EffectivePrice(price int64, promotionalPrice *int64) int64 {
	if promotionalPrice != nil && *promotionalPrice < price {
		return *promotionalPrice
	}
	return price
}

package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
)

// ProductConverter преобразует товары между domain и JSON-моделью кэша.
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
}

// CartConverter преобразует корзину между domain и JSON-моделью кэша.
type CartConverter interface {
	ToRedisModel(cart *domain.Cart) *CartRedisModel
	ToEntity(model *CartRedisModel) *domain.Cart
}

type productConverter struct{}

func NewProductConverter() ProductConverter { return productConverter{} }

func (productConverter) ToRedisModel(p *domain.Product) *ProductRedisModel {
	if p == nil {
		return nil
	}

	m := &ProductRedisModel{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		CategoryID:       p.CategoryID,
		ImageURL:         p.ImageURL,
		VideoURL:         p.VideoURL,
		AdditionalImages: p.AdditionalImages,
		IsFeatured:       p.IsFeatured,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Category != nil {
		m.CategoryName = p.Category.Name
	}
	return m
}

func (productConverter) ToEntity(m *ProductRedisModel) *domain.Product {
	if m == nil {
		return nil
	}

	p := &domain.Product{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Price:            m.Price,
		PromotionalPrice: m.PromotionalPrice,
		CategoryID:       m.CategoryID,
		ImageURL:         m.ImageURL,
		VideoURL:         m.VideoURL,
		AdditionalImages: m.AdditionalImages,
		IsFeatured:       m.IsFeatured,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if p.AdditionalImages == nil {
		p.AdditionalImages = []string{}
	}
	if m.CategoryID != nil && m.CategoryName != "" {
		p.Category = &domain.CategorySummary{ID: *m.CategoryID, Name: m.CategoryName}
	}
	return p
}

func (c productConverter) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	out := make([]ProductRedisModel, 0, len(entities))
	for i := range entities {
		out = append(out, *c.ToRedisModel(&entities[i]))
	}
	return out
}

type cartConverter struct{}

func NewCartConverter() CartConverter { return cartConverter{} }

func (cartConverter) ToRedisModel(cart *domain.Cart) *CartRedisModel {
	lines := cart.Lines()
	m := &CartRedisModel{Lines: make([]CartLineRedisModel, 0, len(lines))}
	for _, l := range lines {
		m.Lines = append(m.Lines, CartLineRedisModel{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Price:            l.Price,
			PromotionalPrice: l.PromotionalPrice,
			ImageURL:         l.ImageURL,
			Quantity:         l.Quantity,
		})
	}
	return m
}

func (cartConverter) ToEntity(m *CartRedisModel) *domain.Cart {
	if m == nil {
		return domain.NewCart()
	}

	lines := make([]domain.CartLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, domain.CartLine{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Price:            l.Price,
			PromotionalPrice: l.PromotionalPrice,
			ImageURL:         l.ImageURL,
			Quantity:         l.Quantity,
		})
	}
	return domain.NewCart(lines...)
}

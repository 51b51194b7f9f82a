package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// OrderConverter преобразует заказы и их позиции.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order
	ToItemEntity(model *OrderItemModel) domain.OrderItem
}

// SettingsConverter преобразует настройки витрины.
type SettingsConverter interface {
	WhatsAppToEntity(model *WhatsAppConfigModel) *domain.WhatsAppConfig
	HeroVideoToEntity(model *HeroVideoModel) *domain.HeroVideo
}

type productConverter struct{}

func NewProductConverter() ProductConverter { return productConverter{} }

func (productConverter) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}

	images := entity.AdditionalImages
	if images == nil {
		images = []string{}
	}

	return &ProductModel{
		ID:               entity.ID,
		Name:             entity.Name,
		Description:      entity.Description,
		Price:            entity.Price,
		PromotionalPrice: entity.PromotionalPrice,
		CategoryID:       entity.CategoryID,
		ImageURL:         entity.ImageURL,
		VideoURL:         entity.VideoURL,
		AdditionalImages: images,
		IsFeatured:       entity.IsFeatured,
		CreatedAt:        entity.CreatedAt,
		UpdatedAt:        entity.UpdatedAt,
	}
}

func (productConverter) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	p := &domain.Product{
		ID:               model.ID,
		Name:             model.Name,
		Description:      model.Description,
		Price:            model.Price,
		PromotionalPrice: model.PromotionalPrice,
		CategoryID:       model.CategoryID,
		ImageURL:         model.ImageURL,
		VideoURL:         model.VideoURL,
		AdditionalImages: model.AdditionalImages,
		IsFeatured:       model.IsFeatured,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
	if p.AdditionalImages == nil {
		p.AdditionalImages = []string{}
	}
	if model.CategoryID != nil && model.CategoryName != nil {
		p.Category = &domain.CategorySummary{ID: *model.CategoryID, Name: *model.CategoryName}
	}

	return p
}

func (c productConverter) ToArrEntity(models []ProductModel) []domain.Product {
	out := make([]domain.Product, 0, len(models))
	for i := range models {
		out = append(out, *c.ToEntity(&models[i]))
	}
	return out
}

type categoryConverter struct{}

func NewCategoryConverter() CategoryConverter { return categoryConverter{} }

func (categoryConverter) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		ImageURL:    entity.ImageURL,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (categoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		ImageURL:    model.ImageURL,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

type orderConverter struct{}

func NewOrderConverter() OrderConverter { return orderConverter{} }

func (orderConverter) ToModel(entity *domain.Order) *OrderModel {
	if entity == nil {
		return nil
	}
	return &OrderModel{
		ID:               entity.ID,
		CustomerName:     entity.CustomerName,
		CustomerPhone:    entity.CustomerPhone,
		DeliveryLocation: entity.DeliveryLocation,
		TotalAmount:      entity.TotalAmount,
		Status:           entity.Status.String(),
		CreatedAt:        entity.CreatedAt,
		UpdatedAt:        entity.UpdatedAt,
	}
}

// ToEntity собирает заказ. Статус из БД не перепроверяется: его ограничивает CHECK.
func (c orderConverter) ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order {
	if model == nil {
		return nil
	}

	o := &domain.Order{
		ID:               model.ID,
		CustomerName:     model.CustomerName,
		CustomerPhone:    model.CustomerPhone,
		DeliveryLocation: model.DeliveryLocation,
		TotalAmount:      model.TotalAmount,
		Status:           domain.OrderStatus(model.Status),
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
		Items:            make([]domain.OrderItem, 0, len(items)),
	}
	for i := range items {
		o.Items = append(o.Items, c.ToItemEntity(&items[i]))
	}

	return o
}

func (orderConverter) ToItemEntity(model *OrderItemModel) domain.OrderItem {
	item := domain.OrderItem{
		ID:          model.ID,
		OrderID:     model.OrderID,
		ProductID:   model.ProductID,
		ProductName: model.ProductName,
		Quantity:    model.Quantity,
		Price:       model.Price,
	}
	if model.ProductID != nil {
		item.Product = &domain.ProductSummary{
			ID:       *model.ProductID,
			Name:     model.ProductName,
			ImageURL: model.ProductImageURL,
		}
	}
	return item
}

type settingsConverter struct{}

func NewSettingsConverter() SettingsConverter { return settingsConverter{} }

func (settingsConverter) WhatsAppToEntity(model *WhatsAppConfigModel) *domain.WhatsAppConfig {
	if model == nil {
		return nil
	}
	return &domain.WhatsAppConfig{
		ID:              model.ID,
		PhoneNumber:     model.PhoneNumber,
		MessageTemplate: model.MessageTemplate,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
	}
}

func (settingsConverter) HeroVideoToEntity(model *HeroVideoModel) *domain.HeroVideo {
	if model == nil {
		return nil
	}
	return &domain.HeroVideo{
		ID:        model.ID,
		VideoURL:  model.VideoURL,
		UpdatedAt: model.UpdatedAt,
	}
}

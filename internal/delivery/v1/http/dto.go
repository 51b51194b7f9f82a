package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/google/uuid"
)

// REQUESTS

type createOrderRequest struct {
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	DeliveryLocation string             `json:"delivery_location"`
	Items            []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

type checkoutRequest struct {
	CustomerName     string `json:"customer_name"`
	CustomerPhone    string `json:"customer_phone"`
	DeliveryLocation string `json:"delivery_location"`
}

// productRequest цены принимаются строкой или числом JSON.
type productRequest struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            jsonPrice `json:"price"`
	PromotionalPrice jsonPrice `json:"promotional_price"`
	CategoryID       *string   `json:"category_id"`
	ImageURL         *string   `json:"image_url"`
	VideoURL         *string   `json:"video_url"`
	AdditionalImages []string  `json:"additional_images"`
	IsFeatured       bool      `json:"is_featured"`
}

func (p *productRequest) toInput() *usecase.ProductInput {
	in := &usecase.ProductInput{
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price.String(),
		CategoryID:       p.CategoryID,
		ImageURL:         p.ImageURL,
		VideoURL:         p.VideoURL,
		AdditionalImages: p.AdditionalImages,
		IsFeatured:       p.IsFeatured,
	}
	if !p.PromotionalPrice.IsZero() {
		promo := p.PromotionalPrice.String()
		in.PromotionalPrice = &promo
	}
	return in
}

// jsonPrice хранит цену в исходном виде: админка присылает её то строкой, то числом.
// Разбор и проверка происходят в usecase.
type jsonPrice struct {
	raw string
	set bool
}

func (p *jsonPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = jsonPrice{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = jsonPrice{raw: s, set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = jsonPrice{raw: n.String(), set: true}
	return nil
}

func (p jsonPrice) String() string { return p.raw }

func (p jsonPrice) IsZero() bool { return !p.set }

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type whatsAppRequest struct {
	PhoneNumber     string `json:"phone_number"`
	MessageTemplate string `json:"message_template"`
}

type heroVideoRequest struct {
	VideoURL string `json:"video_url"`
}

type conversionRequest struct {
	EventSourceURL string   `json:"event_source_url"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	ContentIDs     []string `json:"content_ids"`
	ContentName    string   `json:"content_name"`
	Value          int64    `json:"value"`
	Currency       string   `json:"currency"`
	NumItems       int      `json:"num_items"`
}

// RESPONSES

type messageResponse struct {
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type orderHeaderResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  int64     `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type createOrderResponse struct {
	Message string              `json:"message"`
	Order   orderHeaderResponse `json:"order"`
}

type productSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL *string   `json:"image_url,omitempty"`
}

type orderItemResponse struct {
	ID          uuid.UUID               `json:"id"`
	ProductID   *uuid.UUID              `json:"product_id"`
	ProductName string                  `json:"product_name"`
	Quantity    int                     `json:"quantity"`
	Price       int64                   `json:"price"`
	Product     *productSummaryResponse `json:"product"`
}

type orderResponse struct {
	ID               uuid.UUID           `json:"id"`
	CustomerName     string              `json:"customer_name"`
	CustomerPhone    string              `json:"customer_phone"`
	DeliveryLocation string              `json:"delivery_location"`
	TotalAmount      int64               `json:"total_amount"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        *time.Time          `json:"updated_at"`
	Items            []orderItemResponse `json:"items"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type listOrdersResponse struct {
	Orders     []orderResponse    `json:"orders"`
	Pagination paginationResponse `json:"pagination"`
}

type cartLineResponse struct {
	ProductID        uuid.UUID `json:"product_id"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	PromotionalPrice *int64    `json:"promotional_price"`
	ImageURL         *string   `json:"image_url"`
	Quantity         int       `json:"quantity"`
	LineTotal        int64     `json:"line_total"`
}

type cartResponse struct {
	Items     []cartLineResponse `json:"items"`
	Total     int64              `json:"total"`
	ItemCount int                `json:"item_count"`
}

type categorySummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type productResponse struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	Price            int64                    `json:"price"`
	PromotionalPrice *int64                   `json:"promotional_price"`
	CategoryID       *uuid.UUID               `json:"category_id"`
	Category         *categorySummaryResponse `json:"category"`
	ImageURL         *string                  `json:"image_url"`
	VideoURL         *string                  `json:"video_url"`
	AdditionalImages []string                 `json:"additional_images"`
	IsFeatured       bool                     `json:"is_featured"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        *time.Time               `json:"updated_at"`
}

type categoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type resetProductsResponse struct {
	Deleted int `json:"deleted"`
}

type whatsAppConfigResponse struct {
	ID              uuid.UUID `json:"id"`
	PhoneNumber     string    `json:"phone_number"`
	MessageTemplate string    `json:"message_template"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type whatsAppResponse struct {
	Success bool                    `json:"success"`
	Config  *whatsAppConfigResponse `json:"config"`
}

type heroVideoResponse struct {
	Success  bool    `json:"success"`
	VideoURL *string `json:"video_url"`
}

type visitorStatsResponse struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Total int64 `json:"total"`
}

type mediaResponse struct {
	URLs []string `json:"urls"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// MAPPERS

func toOrderHeaderResponse(o *domain.Order) orderHeaderResponse {
	return orderHeaderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status.String(),
		CreatedAt:    o.CreatedAt,
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		item := orderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
		if it.Product != nil {
			item.Product = &productSummaryResponse{
				ID:       it.Product.ID,
				Name:     it.Product.Name,
				ImageURL: it.Product.ImageURL,
			}
		}
		items = append(items, item)
	}

	return orderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		DeliveryLocation: o.DeliveryLocation,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status.String(),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Items:            items,
	}
}

func toListOrdersResponse(res *usecase.ListOrdersRes) listOrdersResponse {
	orders := make([]orderResponse, 0, len(res.Orders))
	for i := range res.Orders {
		orders = append(orders, toOrderResponse(&res.Orders[i]))
	}
	return listOrdersResponse{
		Orders: orders,
		Pagination: paginationResponse{
			Page:  res.Page,
			Limit: res.Limit,
			Total: res.Total,
		},
	}
}

func toCartResponse(c *domain.Cart) cartResponse {
	lines := c.Lines()
	items := make([]cartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, cartLineResponse{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Price:            l.Price,
			PromotionalPrice: l.PromotionalPrice,
			ImageURL:         l.ImageURL,
			Quantity:         l.Quantity,
			LineTotal:        l.LineTotal(),
		})
	}
	return cartResponse{
		Items:     items,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

func toProductResponse(p *domain.Product) productResponse {
	resp := productResponse{
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
	if resp.AdditionalImages == nil {
		resp.AdditionalImages = []string{}
	}
	if p.Category != nil {
		resp.Category = &categorySummaryResponse{ID: p.Category.ID, Name: p.Category.Name}
	}
	return resp
}

func toProductsResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoriesResponse(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}

func toWhatsAppResponse(c *domain.WhatsAppConfig) whatsAppResponse {
	if c == nil {
		return whatsAppResponse{Success: true}
	}
	return whatsAppResponse{
		Success: true,
		Config: &whatsAppConfigResponse{
			ID:              c.ID,
			PhoneNumber:     c.PhoneNumber,
			MessageTemplate: c.MessageTemplate,
			IsActive:        c.IsActive,
			CreatedAt:       c.CreatedAt,
		},
	}
}

func toHeroVideoResponse(v *domain.HeroVideo) heroVideoResponse {
	if v == nil {
		return heroVideoResponse{Success: true}
	}
	url := v.VideoURL
	return heroVideoResponse{Success: true, VideoURL: &url}
}

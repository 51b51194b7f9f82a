package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary	Каталог товаров
//	@Tags		products
//	@Produce	json
//	@Param		category	query		string	false	"ID категории"
//	@Param		featured	query		bool	false	"Только избранные"
//	@Success	200			{array}		productResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter usecase.ProductFilter
	if raw := q.Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeErr(p.logger, w, r, e.NewValidationError("category", "must be a valid UUID"))
			return
		}
		filter.CategoryID = &id
	}
	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			writeErr(p.logger, w, r, e.NewValidationError("featured", "must be a boolean"))
			return
		}
		filter.FeaturedOnly = featured
	}

	products, err := p.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	productResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	product, err := p.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Новый товар
//	@Description	Цены в целых XAF, строкой или числом
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			product	body		productRequest	true	"Товар"
//	@Success		201		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body productRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	product, err := p.catalogUsecase.CreateProduct(r.Context(), body.toInput())
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary	Изменение товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"ID товара"
//	@Param		product	body		productRequest	true	"Товар"
//	@Success	200		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	var body productRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	product, err := p.catalogUsecase.UpdateProduct(r.Context(), id, body.toInput())
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	if err := p.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resetProducts
//
//	@Summary		Очистка каталога
//	@Description	Удаляет все товары; позиции старых заказов сохраняют название
//	@Tags			products
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	resetProductsResponse
//	@Router			/products/reset [delete]
func (p *ProductHandler) resetProducts(w http.ResponseWriter, r *http.Request) {
	n, err := p.catalogUsecase.ResetProducts(r.Context())
	if err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	p.logger.Infof("catalog reset: %d product(s) removed", n)
	WriteSuccess(w, http.StatusOK, resetProductsResponse{Deleted: n})
}

// facebookFeed
//
//	@Summary	CSV-фид каталога для Facebook
//	@Tags		catalog
//	@Produce	text/csv
//	@Success	200	{string}	string
//	@Router		/catalog/facebook-csv [get]
func (p *ProductHandler) facebookFeed(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := p.catalogUsecase.ExportFacebookCatalog(r.Context(), &buf); err != nil {
		writeErr(p.logger, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="facebook-catalog.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		p.logger.Warnf("facebook feed write interrupted: %v", err)
	}
}

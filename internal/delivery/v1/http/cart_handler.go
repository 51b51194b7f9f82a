package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

const cartSessionHeader = "X-Cart-Session"

// CartHandler обслуживает серверную копию корзины, привязанную к X-Cart-Session.
type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// getCart
//
//	@Summary	Текущая корзина
//	@Tags		cart
//	@Produce	json
//	@Param		X-Cart-Session	header		string	true	"ID сессии корзины"
//	@Success	200				{object}	cartResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	session, err := cartSessionID(r)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	cart, err := c.cartUsecase.GetCart(r.Context(), session)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addItem
//
//	@Summary	Добавить товар в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		X-Cart-Session	header		string				true	"ID сессии корзины"
//	@Param		item			body		addCartItemRequest	true	"Товар"
//	@Success	200				{object}	cartResponse
//	@Failure	400				{object}	ErrorResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	session, err := cartSessionID(r)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	var body addCartItemRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}
	productID, err := uuid.Parse(strings.TrimSpace(body.ProductID))
	if err != nil {
		writeErr(c.logger, w, r, e.NewValidationError("product_id", "must be a valid UUID"))
		return
	}

	cart, err := c.cartUsecase.AddItem(r.Context(), session, productID)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// updateItem
//
//	@Summary		Изменить количество
//	@Description	Количество 0 или меньше удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Cart-Session	header		string					true	"ID сессии корзины"
//	@Param			productID		path		string					true	"ID товара"
//	@Param			item			body		updateCartItemRequest	true	"Количество"
//	@Success		200				{object}	cartResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/cart/items/{productID} [put]
func (c *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	session, err := cartSessionID(r)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}
	productID, err := parseUUIDParam(r, "productID")
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	var body updateCartItemRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}
	if body.Quantity == nil {
		writeErr(c.logger, w, r, e.NewValidationError("quantity", "is required"))
		return
	}

	cart, err := c.cartUsecase.UpdateQuantity(r.Context(), session, productID, *body.Quantity)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeItem
//
//	@Summary	Убрать товар из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-Cart-Session	header		string	true	"ID сессии корзины"
//	@Param		productID		path		string	true	"ID товара"
//	@Success	200				{object}	cartResponse
//	@Router		/cart/items/{productID} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	session, err := cartSessionID(r)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}
	productID, err := parseUUIDParam(r, "productID")
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	cart, err := c.cartUsecase.RemoveItem(r.Context(), session, productID)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		cart
//	@Param		X-Cart-Session	header	string	true	"ID сессии корзины"
//	@Success	204
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, err := cartSessionID(r)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	if err := c.cartUsecase.Clear(r.Context(), session); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// checkout
//
//	@Summary		Оформить заказ из корзины
//	@Description	Цены пересчитываются по каталогу, корзина очищается только после успешного создания заказа
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Cart-Session	header		string			true	"ID сессии корзины"
//	@Param			Idempotency-Key	header		string			false	"Ключ повтора запроса"
//	@Param			customer		body		checkoutRequest	true	"Данные покупателя"
//	@Success		201				{object}	createOrderResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Router			/cart/checkout [post]
func (c *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	session, err := cartSessionID(r)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	var body checkoutRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	res, err := c.cartUsecase.Checkout(r.Context(), &usecase.CheckoutReq{
		SessionID:        session,
		CustomerName:     body.CustomerName,
		CustomerPhone:    body.CustomerPhone,
		DeliveryLocation: body.DeliveryLocation,
		IdempotencyKey:   r.Header.Get(idempotencyHeader),
	})
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	WriteSuccess(w, status, createOrderResponse{
		Message: orderCreatedMessage,
		Order:   toOrderHeaderResponse(res.Order),
	})
}

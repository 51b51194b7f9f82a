package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	idempotencyHeader   = "Idempotency-Key"
	orderCreatedMessage = "Order created successfully"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Проверяет данные покупателя, пересчитывает цены по каталогу и сохраняет заказ с позициями
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string				false	"Ключ повтора запроса"
//	@Param			order			body		createOrderRequest	true	"Заказ"
//	@Success		201				{object}	createOrderResponse
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404				{object}	ErrorResponse	"Товар не найден"
//	@Failure		409				{object}	ErrorResponse	"Запрос с этим ключом ещё выполняется"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, usecase.OrderItemReq{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	res, err := o.orderUsecase.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		CustomerName:     body.CustomerName,
		CustomerPhone:    body.CustomerPhone,
		DeliveryLocation: body.DeliveryLocation,
		Items:            items,
		IdempotencyKey:   r.Header.Get(idempotencyHeader),
	})
	if err != nil {
		writeErr(o.logger, w, r, err)
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

// listOrders
//
//	@Summary		Список заказов
//	@Tags			orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	query		string	false	"pending или confirmed"
//	@Param			page	query		int		false	"Страница, с 1"
//	@Param			limit	query		int		false	"Размер страницы, 1..100"
//	@Success		200		{object}	listOrdersResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := optionalInt(q.Get("page"), "page")
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}
	limit, err := optionalInt(q.Get("limit"), "limit")
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	res, err := o.orderUsecase.ListOrders(r.Context(), &usecase.ListOrdersReq{
		Status: q.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toListOrdersResponse(res))
}

// getOrder
//
//	@Summary	Заказ по идентификатору
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID заказа"
//	@Success	200	{object}	orderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	order, err := o.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// updateStatus
//
//	@Summary	Смена статуса заказа
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"ID заказа"
//	@Param		status	body		setStatusRequest	true	"Новый статус"
//	@Success	200		{object}	orderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{id}/status [put]
func (o *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	var body setStatusRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	order, err := o.orderUsecase.SetStatus(r.Context(), &usecase.SetStatusReq{OrderID: id, Status: body.Status})
	if err != nil {
		writeErr(o.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// optionalInt разбирает необязательный числовой параметр запроса.
func optionalInt(raw, field string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, e.NewValidationError(field, "must be an integer")
	}
	return &n, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

const (
	defaultOrdersPage  = 1
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
	maxOrdersPage      = 1_000_000
)

// OrderUseCase оформляет заказы, отдаёт их администраторам и меняет статус.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	txManager   TxManager
	idempotency IdempotencyRepository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	txManager TxManager,
	idempotency IdempotencyRepository,
	publisher EventPublisher,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		idempotency: idempotency,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateOrder проверяет запрос, пересчитывает цены по каталогу и сохраняет заказ
// вместе с позициями в одной транзакции.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error) {
	const op = "OrderUseCase.CreateOrder"

	lines, err := validateCreateOrder(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	key := strings.TrimSpace(req.IdempotencyKey)
	if key != "" {
		owned, existing, err := o.claimKey(ctx, key)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if existing != nil {
			return NewCreateOrderRes(existing, true), nil
		}
		if !owned {
			key = ""
		}
	}

	completed := false
	if key != "" {
		defer func() {
			if !completed {
				o.releaseKey(ctx, key)
			}
		}()
	}

	items, err := o.priceItems(ctx, lines)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order := domain.NewOrder(
		strings.TrimSpace(req.CustomerName),
		strings.TrimSpace(req.CustomerPhone),
		strings.TrimSpace(req.DeliveryLocation),
		items,
	)

	// Шапка и позиции пишутся атомарно: при ошибке вставки позиций откатывается и шапка.
	err = o.txManager.WithinTx(ctx, func(ctx context.Context) error {
		created, err := o.orderRepo.Create(ctx, order)
		if err != nil {
			return err
		}
		order.CreatedAt = created.CreatedAt

		return o.orderRepo.CreateItems(ctx, order.ID, order.Items)
	})
	if err != nil {
		return nil, e.Wrap(op, e.Persistence("create order", err))
	}

	o.logger.Infof("order created: id=%s total=%d items=%d", order.ID, order.TotalAmount, len(order.Items))

	completed = true
	if key != "" {
		if err := o.idempotency.Complete(ctx, key, order.ID); err != nil {
			o.logger.Warnf("Failed to remember idempotency key for order %s: %v", order.ID, e.Wrap(op, err))
		}
	}

	o.publish(ctx, domain.OrderCreated, order)

	return NewCreateOrderRes(order, false), nil
}

// ListOrders отдаёт страницу заказов, новые первыми.
func (o *OrderUseCase) ListOrders(ctx context.Context, req *ListOrdersReq) (*ListOrdersRes, error) {
	const op = "OrderUseCase.ListOrders"

	page, limit := defaultOrdersPage, defaultOrdersLimit
	if req.Page != nil {
		page = *req.Page
	}
	if req.Limit != nil {
		limit = *req.Limit
	}

	v := &e.ValidationError{}
	if page < 1 {
		v.Add("page", "must be >= 1")
	} else if page > maxOrdersPage {
		v.Add("page", fmt.Sprintf("must be at most %d", maxOrdersPage))
	}
	if limit < 1 || limit > maxOrdersLimit {
		v.Add("limit", fmt.Sprintf("must be between 1 and %d", maxOrdersLimit))
	}

	// После проверки page и limit смещение не больше maxOrdersPage*maxOrdersLimit.
	filter := OrderFilter{Limit: limit}
	if v.Err() == nil {
		filter.Offset = (page - 1) * limit
	}
	if req.Status != "" {
		status, err := domain.ParseOrderStatus(req.Status)
		if err != nil {
			v.Add("status", statusMessage())
		} else {
			filter.Status = &status
		}
	}
	if err := v.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, total, err := o.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewListOrdersRes(orders, page, limit, total), nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// SetStatus переводит заказ между pending и confirmed. Обратный переход разрешён.
func (o *OrderUseCase) SetStatus(ctx context.Context, req *SetStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.SetStatus"

	status, err := domain.ParseOrderStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return nil, e.Wrap(op, e.NewValidationError("status", statusMessage()))
	}

	if err := o.orderRepo.UpdateStatus(ctx, req.OrderID, status); err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := o.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	o.logger.Infof("order %s status set to %s", order.ID, order.Status)
	o.publish(ctx, domain.OrderStatusChanged, order)

	return order, nil
}

// priceItems загружает товары одним запросом и фиксирует текущую эффективную цену.
// Если хотя бы одного товара нет, заказ не создаётся.
func (o *OrderUseCase) priceItems(ctx context.Context, lines []orderLine) ([]domain.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.productID)
	}

	products, err := o.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		product, ok := byID[l.productID]
		if !ok {
			return nil, e.NewNotFoundError("product", l.productID.String())
		}
		items = append(items, domain.NewOrderItem(product, product.EffectivePrice(), l.quantity))
	}

	if _, err := domain.SumItems(items); err != nil {
		return nil, e.NewValidationError("items", "order total is too large")
	}

	return items, nil
}

// claimKey занимает Idempotency-Key до создания заказа.
// Возвращает заказ, уже созданный с этим ключом, или e.ErrIdempotencyInProgress,
// если первый запрос ещё выполняется. При недоступном хранилище ключей
// owned=false и заказ оформляется без защиты от повтора.
func (o *OrderUseCase) claimKey(ctx context.Context, key string) (owned bool, existing *domain.Order, err error) {
	const op = "OrderUseCase.claimKey"

	claimed, orderID, err := o.idempotency.Claim(ctx, key)
	if err != nil {
		o.logger.Warnf("Idempotency claim failed: %v", e.Wrap(op, err))
		return false, nil, nil
	}
	if claimed {
		return true, nil, nil
	}
	if orderID == uuid.Nil {
		return false, nil, e.ErrIdempotencyInProgress
	}

	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			// Заказа по ключу больше нет: создаём новый, Complete перепишет ключ.
			o.logger.Warnf("Order %s for idempotency key is gone, creating a new one", orderID)
			return true, nil, nil
		}
		return false, nil, e.Wrap(op, err)
	}

	o.logger.Infof("order %s returned for repeated idempotency key", orderID)
	return false, order, nil
}

// releaseKey снимает заявку после неудачи, чтобы клиент мог повторить запрос.
func (o *OrderUseCase) releaseKey(ctx context.Context, key string) {
	if err := o.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		o.logger.Warnf("Failed to release idempotency key: %v", e.Wrap("OrderUseCase.releaseKey", err))
	}
}

func (o *OrderUseCase) publish(ctx context.Context, eventType domain.OrderEventType, order *domain.Order) {
	if err := o.publisher.PublishOrderEvent(ctx, domain.NewOrderEvent(eventType, order)); err != nil {
		o.logger.Warnf("Failed to publish %s for order %s: %v", eventType, order.ID, err)
	}
}

func statusMessage() string {
	return fmt.Sprintf("must be one of: %s, %s", domain.OrderStatusPending, domain.OrderStatusConfirmed)
}

package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

type productGetter interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type orderCreator interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error)
}

// CartUseCase хранит корзину сессии между запросами и оформляет её в заказ.
type CartUseCase struct {
	cartRepo CartRepository
	products productGetter
	orders   orderCreator
	logger   logger.Logger
}

func NewCartUC(cartRepo CartRepository, products productGetter, orders orderCreator, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		products: products,
		orders:   orders,
		logger:   logger,
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, sessionID uuid.UUID) (*domain.Cart, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return cart, nil
}

// AddItem снимает карточку товара из каталога и добавляет одну единицу.
func (c *CartUseCase) AddItem(ctx context.Context, sessionID, productID uuid.UUID) (*domain.Cart, error) {
	const op = "CartUseCase.AddItem"

	product, err := c.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.mutate(ctx, op, sessionID, func(cart *domain.Cart) {
		cart.AddItem(product)
	})
}

func (c *CartUseCase) UpdateQuantity(ctx context.Context, sessionID, productID uuid.UUID, quantity int) (*domain.Cart, error) {
	return c.mutate(ctx, "CartUseCase.UpdateQuantity", sessionID, func(cart *domain.Cart) {
		cart.UpdateQuantity(productID, quantity)
	})
}

func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID, productID uuid.UUID) (*domain.Cart, error) {
	return c.mutate(ctx, "CartUseCase.RemoveItem", sessionID, func(cart *domain.Cart) {
		cart.RemoveItem(productID)
	})
}

func (c *CartUseCase) Clear(ctx context.Context, sessionID uuid.UUID) error {
	const op = "CartUseCase.Clear"

	if err := c.cartRepo.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

// Checkout превращает корзину в заказ. Цены из корзины не используются,
// корзина очищается только после успешного создания заказа.
func (c *CartUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*CreateOrderRes, error) {
	const op = "CartUseCase.Checkout"

	cart, err := c.cartRepo.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	lines := cart.Lines()
	items := make([]OrderItemReq, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItemReq{ProductID: l.ProductID.String(), Quantity: l.Quantity})
	}

	res, err := c.orders.CreateOrder(ctx, &CreateOrderReq{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		DeliveryLocation: req.DeliveryLocation,
		Items:            items,
		IdempotencyKey:   req.IdempotencyKey,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cartRepo.Delete(ctx, req.SessionID); err != nil {
		c.logger.Warnf("Failed to clear cart %s after order %s: %v", req.SessionID, res.Order.ID, e.Wrap(op, err))
	}

	return res, nil
}

func (c *CartUseCase) mutate(ctx context.Context, op string, sessionID uuid.UUID, apply func(cart *domain.Cart)) (*domain.Cart, error) {
	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	apply(cart)

	if cart.IsEmpty() {
		err = c.cartRepo.Delete(ctx, sessionID)
	} else {
		err = c.cartRepo.Save(ctx, sessionID, cart)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

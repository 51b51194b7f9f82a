package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	uc          *OrderUseCase
	orders      *memOrderRepo
	products    *memProductRepo
	tx          *fakeTx
	idempotency *memIdempotency
	publisher   *recordingPublisher
}

func newOrderFixture(products ...*domain.Product) *orderFixture {
	f := &orderFixture{
		orders:      newMemOrderRepo(),
		products:    newMemProductRepo(products...),
		idempotency: newMemIdempotency(),
		publisher:   &recordingPublisher{},
	}
	f.tx = &fakeTx{participants: []snapshotter{f.orders}}
	f.uc = NewOrderUC(f.orders, f.products, f.tx, f.idempotency, f.publisher, logger.NewNopLogger())
	return f
}

func testProduct(name string, price int64, promo *int64) *domain.Product {
	return &domain.Product{ID: uuid.New(), Name: name, Price: price, PromotionalPrice: promo}
}

func ptr[T any](v T) *T { return &v }

func validOrderReq(items ...OrderItemReq) *CreateOrderReq {
	return &CreateOrderReq{
		CustomerName:     "Awa Ngono",
		CustomerPhone:    "+237 6 99 12 34 56",
		DeliveryLocation: "Douala, Akwa",
		Items:            items,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var v *e.ValidationError
	require.True(t, errors.As(err, &v), "expected validation error, got %v", err)
	out := make(map[string]string, len(v.Fields))
	for _, f := range v.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestCreateOrder_TotalIsRecomputedFromCatalog(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	table := testProduct("Table", 2000, nil)
	f := newOrderFixture(sofa, table)

	res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 2},
		OrderItemReq{ProductID: table.ID.String(), Quantity: 1},
	))
	require.NoError(t, err)

	assert.False(t, res.Replayed)
	assert.Equal(t, int64(4000), res.Order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, res.Order.Status)
	assert.False(t, res.Order.CreatedAt.IsZero())
	require.Len(t, res.Order.Items, 2)

	stored, err := f.orders.GetByID(context.Background(), res.Order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, stored.ItemsTotal(), stored.TotalAmount)
}

func TestCreateOrder_UsesPromotionalPrice(t *testing.T) {
	lamp := testProduct("Lamp", 10000, ptr(int64(7500)))
	f := newOrderFixture(lamp)

	res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: lamp.ID.String(), Quantity: 2},
	))
	require.NoError(t, err)

	assert.Equal(t, int64(7500), res.Order.Items[0].Price)
	assert.Equal(t, int64(15000), res.Order.TotalAmount)
}

func TestCreateOrder_DuplicateItemsAreMerged(t *testing.T) {
	chair := testProduct("Chair", 500, nil)
	f := newOrderFixture(chair)

	res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: chair.ID.String(), Quantity: 1},
		OrderItemReq{ProductID: chair.ID.String(), Quantity: 3},
	))
	require.NoError(t, err)

	require.Len(t, res.Order.Items, 1)
	assert.Equal(t, 4, res.Order.Items[0].Quantity)
	assert.Equal(t, int64(2000), res.Order.TotalAmount)
}

func TestCreateOrder_ValidationCollectsEveryField(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName:  "  ",
		CustomerPhone: "12",
		Items: []OrderItemReq{
			{ProductID: "not-a-uuid", Quantity: 0},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)

	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "customer_name")
	assert.Contains(t, fields, "customer_phone")
	assert.Contains(t, fields, "delivery_location")
	assert.Contains(t, fields, "items[0].product_id")
	assert.Contains(t, fields, "items[0].quantity")

	assert.Zero(t, f.orders.createCalls)
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), validOrderReq())
	require.Error(t, err)

	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "items")
	assert.Zero(t, f.orders.count())
}

func TestCreateOrder_UnknownProductIsNotFound(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	missing := uuid.New()

	_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1},
		OrderItemReq{ProductID: missing.String(), Quantity: 1},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.Contains(t, err.Error(), missing.String())

	assert.Zero(t, f.orders.createCalls)
	assert.Zero(t, f.orders.count())
	assert.Empty(t, f.publisher.events)
}

func TestCreateOrder_ItemFailureLeavesNoOrder(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	f.orders.createItemsErr = errors.New("connection reset")

	_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrPersistence)

	assert.Equal(t, 1, f.orders.createCalls)
	assert.Equal(t, 1, f.orders.createItemCalls)
	assert.Zero(t, f.orders.count(), "order header must not survive a failed item insert")
	assert.Empty(t, f.publisher.events)
}

func TestCreateOrder_HeaderFailureSkipsItems(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	f.orders.createErr = errors.New("disk full")

	_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrPersistence)
	assert.Zero(t, f.orders.createItemCalls)
}

func TestCreateOrder_PublishesCreatedEvent(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)

	res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 3},
	))
	require.NoError(t, err)

	require.Len(t, f.publisher.events, 1)
	ev := f.publisher.events[0]
	assert.Equal(t, domain.OrderCreated, ev.EventType)
	assert.Equal(t, res.Order.ID, ev.OrderID)
	assert.Equal(t, int64(3000), ev.TotalAmount)
}

func TestCreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	f.publisher.err = errors.New("broker down")

	res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, f.orders.count())
	assert.NotNil(t, res.Order)
}

func TestCreateOrder_IdempotencyKeyReplaysOrder(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)

	req := validOrderReq(OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1})
	req.IdempotencyKey = "checkout-7f1c"

	first, err := f.uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	second, err := f.uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, first.Replayed)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Order.ID, second.Order.ID)
	assert.Equal(t, 1, f.orders.count())
	assert.Len(t, f.publisher.events, 1)
}

func TestCreateOrder_IdempotencyLookupFailureStillCreates(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	f.idempotency.claimErr = errors.New("redis timeout")

	req := validOrderReq(OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1})
	req.IdempotencyKey = "k1"

	res, err := f.uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Replayed)
	assert.Equal(t, 1, f.orders.count())
}

func TestCreateOrder_RetryWhileFirstInFlightConflicts(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)

	req := validOrderReq(OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1})
	req.IdempotencyKey = "checkout-race"

	var retryErr error
	f.products.beforeGetByIDs = func() {
		_, retryErr = f.uc.CreateOrder(context.Background(), req)
	}

	first, err := f.uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	assert.ErrorIs(t, retryErr, e.ErrIdempotencyInProgress)
	assert.Equal(t, 1, f.orders.count())
	assert.Len(t, f.publisher.events, 1)

	id, ok := f.idempotency.lookup("checkout-race")
	require.True(t, ok)
	assert.Equal(t, first.Order.ID, id)

	again, err := f.uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, again.Replayed)
	assert.Equal(t, first.Order.ID, again.Order.ID)
}

func TestCreateOrder_FailedOrderReleasesKey(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	f.orders.createItemsErr = errors.New("connection reset")

	req := validOrderReq(OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1})
	req.IdempotencyKey = "k-retry"

	_, err := f.uc.CreateOrder(context.Background(), req)
	require.Error(t, err)

	_, ok := f.idempotency.lookup("k-retry")
	assert.False(t, ok)
	assert.Equal(t, 1, f.idempotency.released)

	f.orders.createItemsErr = nil
	res, err := f.uc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Replayed)
	assert.Equal(t, 1, f.orders.count())
}

func TestCreateOrder_UnknownProductReleasesKey(t *testing.T) {
	f := newOrderFixture()

	req := validOrderReq(OrderItemReq{ProductID: uuid.NewString(), Quantity: 1})
	req.IdempotencyKey = "k-missing"

	_, err := f.uc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrNotFound)

	_, ok := f.idempotency.lookup("k-missing")
	assert.False(t, ok)
}

func TestCreateOrder_QuantityLimits(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)

	huge := 1 << 32
	huge++

	cases := []struct {
		name  string
		items []OrderItemReq
		field string
	}{
		{"above cap", []OrderItemReq{{ProductID: sofa.ID.String(), Quantity: maxItemQuantity + 1}}, "items[0].quantity"},
		{"truncates to int32", []OrderItemReq{{ProductID: sofa.ID.String(), Quantity: huge}}, "items[0].quantity"},
		{"merged above cap", []OrderItemReq{
			{ProductID: sofa.ID.String(), Quantity: maxItemQuantity},
			{ProductID: sofa.ID.String(), Quantity: 1},
		}, "items[1].quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(sofa)

			_, err := f.uc.CreateOrder(context.Background(), validOrderReq(tc.items...))
			require.Error(t, err)
			assert.Contains(t, fieldsOf(t, err), tc.field)
			assert.Zero(t, f.orders.createCalls)
		})
	}
}

func TestCreateOrder_QuantityAtCapAccepted(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)

	res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: maxItemQuantity - 1},
		OrderItemReq{ProductID: sofa.ID.String(), Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, maxItemQuantity, res.Order.Items[0].Quantity)
	assert.Equal(t, int64(1000*maxItemQuantity), res.Order.TotalAmount)
}

func TestCreateOrder_TotalOverflowRejected(t *testing.T) {
	vault := testProduct("Vault", math.MaxInt64/500, nil)
	f := newOrderFixture(vault)

	_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: vault.ID.String(), Quantity: maxItemQuantity},
	))
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "items")
	assert.Zero(t, f.orders.createCalls)
}

func seedOrders(t *testing.T, f *orderFixture, product *domain.Product, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		res, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			OrderItemReq{ProductID: product.ID.String(), Quantity: i + 1},
		))
		require.NoError(t, err)
		ids = append(ids, res.Order.ID)
	}
	return ids
}

func TestListOrders_DefaultsAndNewestFirst(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	ids := seedOrders(t, f, sofa, 3)

	res, err := f.uc.ListOrders(context.Background(), &ListOrdersReq{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 20, res.Limit)
	assert.Equal(t, int64(3), res.Total)
	require.Len(t, res.Orders, 3)
	assert.Equal(t, ids[2], res.Orders[0].ID)
	assert.Equal(t, ids[0], res.Orders[2].ID)
	assert.Equal(t, OrderFilter{Limit: 20, Offset: 0}, f.orders.lastFilter)
}

func TestListOrders_PaginationOffset(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	seedOrders(t, f, sofa, 5)

	res, err := f.uc.ListOrders(context.Background(), &ListOrdersReq{Page: ptr(2), Limit: ptr(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, f.orders.lastFilter.Offset)
	assert.Len(t, res.Orders, 2)
	assert.Equal(t, int64(5), res.Total)
}

func TestListOrders_RejectsBadParams(t *testing.T) {
	f := newOrderFixture()

	cases := []struct {
		name  string
		req   *ListOrdersReq
		field string
	}{
		{"limit too large", &ListOrdersReq{Limit: ptr(101)}, "limit"},
		{"limit zero", &ListOrdersReq{Limit: ptr(0)}, "limit"},
		{"page zero", &ListOrdersReq{Page: ptr(0)}, "page"},
		{"page overflows offset", &ListOrdersReq{Page: ptr(math.MaxInt / 10), Limit: ptr(20)}, "page"},
		{"page above max", &ListOrdersReq{Page: ptr(maxOrdersPage + 1)}, "page"},
		{"unknown status", &ListOrdersReq{Status: "shipped"}, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.ListOrders(context.Background(), tc.req)
			require.Error(t, err)
			assert.Contains(t, fieldsOf(t, err), tc.field)
			assert.GreaterOrEqual(t, f.orders.lastFilter.Offset, 0)
		})
	}
}

func TestListOrders_StatusFilter(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	ids := seedOrders(t, f, sofa, 3)

	_, err := f.uc.SetStatus(context.Background(), &SetStatusReq{OrderID: ids[1], Status: "confirmed"})
	require.NoError(t, err)

	res, err := f.uc.ListOrders(context.Background(), &ListOrdersReq{Status: "confirmed"})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, ids[1], res.Orders[0].ID)
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.GetOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestSetStatus_ConfirmAndRevert(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	id := seedOrders(t, f, sofa, 1)[0]

	order, err := f.uc.SetStatus(context.Background(), &SetStatusReq{OrderID: id, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)

	order, err = f.uc.SetStatus(context.Background(), &SetStatusReq{OrderID: id, Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)

	last := f.publisher.events[len(f.publisher.events)-1]
	assert.Equal(t, domain.OrderStatusChanged, last.EventType)
	assert.Equal(t, domain.OrderStatusPending, last.Status)
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	sofa := testProduct("Sofa", 1000, nil)
	f := newOrderFixture(sofa)
	id := seedOrders(t, f, sofa, 1)[0]

	_, err := f.uc.SetStatus(context.Background(), &SetStatusReq{OrderID: id, Status: "shipped"})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "status")

	stored, err := f.orders.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)
}

func TestSetStatus_MissingOrder(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.SetStatus(context.Background(), &SetStatusReq{OrderID: uuid.New(), Status: "confirmed"})
	assert.ErrorIs(t, err, e.ErrNotFound)
}

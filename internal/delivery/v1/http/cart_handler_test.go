package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRequest(method, target, body string, session uuid.UUID) *http.Request {
	req := jsonRequest(method, target, body)
	req.Header.Set("X-Cart-Session", session.String())
	return req
}

func TestCart_SessionHeaderRequired(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodGet, "/api/v1/cart", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := jsonRequest(http.MethodGet, "/api/v1/cart", "")
	req.Header.Set("X-Cart-Session", "abc")
	rec = ts.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing or invalid cart session")
}

func TestCart_GetReturnsTotals(t *testing.T) {
	ts := newTestServer(t)
	promo := int64(800)
	ts.cart.cart = domain.NewCart(
		domain.CartLine{ProductID: uuid.New(), Name: "Chaise", Price: 1000, PromotionalPrice: &promo, Quantity: 2},
		domain.CartLine{ProductID: uuid.New(), Name: "Table", Price: 5000, Quantity: 1},
	)
	session := uuid.New()

	rec := ts.do(cartRequest(http.MethodGet, "/api/v1/cart", "", session))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session, ts.cart.session)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(6600), resp.Total)
	assert.Equal(t, 3, resp.ItemCount)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1600), resp.Items[0].LineTotal)
}

func TestCart_EmptyCartSerializesItemsArray(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(cartRequest(http.MethodGet, "/api/v1/cart", "", uuid.New()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"item_count":0}`, rec.Body.String())
}

func TestCart_AddItem(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()

	rec := ts.do(cartRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+productID.String()+`"}`, uuid.New()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, productID, ts.cart.productID)
}

func TestCart_AddItemInvalidProductID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(cartRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"sofa"}`, uuid.New()))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"product_id"`)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()
	ts.cart.err = e.NewNotFoundError("product", productID.String())

	rec := ts.do(cartRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+productID.String()+`"}`, uuid.New()))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_UpdateQuantity(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()

	rec := ts.do(cartRequest(http.MethodPut, "/api/v1/cart/items/"+productID.String(), `{"quantity":0}`, uuid.New()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, productID, ts.cart.productID)
	assert.Equal(t, 0, ts.cart.quantity)
}

func TestCart_UpdateQuantityRequiresValue(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(cartRequest(http.MethodPut, "/api/v1/cart/items/"+uuid.NewString(), `{}`, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_RemoveAndClear(t *testing.T) {
	ts := newTestServer(t)
	session := uuid.New()
	productID := uuid.New()

	rec := ts.do(cartRequest(http.MethodDelete, "/api/v1/cart/items/"+productID.String(), "", session))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, productID, ts.cart.productID)

	rec = ts.do(cartRequest(http.MethodDelete, "/api/v1/cart", "", session))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, ts.cart.cleared)
}

func TestCart_Checkout(t *testing.T) {
	ts := newTestServer(t)
	order := sampleOrder()
	ts.cart.checkoutRes = usecase.NewCreateOrderRes(order, false)
	session := uuid.New()

	req := cartRequest(http.MethodPost, "/api/v1/cart/checkout",
		`{"customer_name":"Awa","customer_phone":"+237699123456","delivery_location":"Yaoundé"}`, session)
	req.Header.Set("Idempotency-Key", "k-1")

	rec := ts.do(req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &usecase.CheckoutReq{
		SessionID:        session,
		CustomerName:     "Awa",
		CustomerPhone:    "+237699123456",
		DeliveryLocation: "Yaoundé",
		IdempotencyKey:   "k-1",
	}, ts.cart.checkoutReq)

	var resp createOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, order.ID, resp.Order.ID)
}

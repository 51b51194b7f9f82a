package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeOrderUC struct {
	createReq  *usecase.CreateOrderReq
	createRes  *usecase.CreateOrderRes
	createErr  error
	listReq    *usecase.ListOrdersReq
	listRes    *usecase.ListOrdersRes
	listErr    error
	order      *domain.Order
	getErr     error
	statusReq  *usecase.SetStatusReq
	setErr     error
	getOrderID uuid.UUID
}

func (f *fakeOrderUC) CreateOrder(_ context.Context, req *usecase.CreateOrderReq) (*usecase.CreateOrderRes, error) {
	f.createReq = req
	return f.createRes, f.createErr
}

func (f *fakeOrderUC) ListOrders(_ context.Context, req *usecase.ListOrdersReq) (*usecase.ListOrdersRes, error) {
	f.listReq = req
	return f.listRes, f.listErr
}

func (f *fakeOrderUC) GetOrder(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	f.getOrderID = id
	return f.order, f.getErr
}

func (f *fakeOrderUC) SetStatus(_ context.Context, req *usecase.SetStatusReq) (*domain.Order, error) {
	f.statusReq = req
	return f.order, f.setErr
}

type fakeCartUC struct {
	cart        *domain.Cart
	err         error
	session     uuid.UUID
	productID   uuid.UUID
	quantity    int
	cleared     bool
	checkoutReq *usecase.CheckoutReq
	checkoutRes *usecase.CreateOrderRes
}

func (f *fakeCartUC) GetCart(_ context.Context, sessionID uuid.UUID) (*domain.Cart, error) {
	f.session = sessionID
	return f.cart, f.err
}

func (f *fakeCartUC) AddItem(_ context.Context, sessionID, productID uuid.UUID) (*domain.Cart, error) {
	f.session, f.productID = sessionID, productID
	return f.cart, f.err
}

func (f *fakeCartUC) UpdateQuantity(_ context.Context, sessionID, productID uuid.UUID, quantity int) (*domain.Cart, error) {
	f.session, f.productID, f.quantity = sessionID, productID, quantity
	return f.cart, f.err
}

func (f *fakeCartUC) RemoveItem(_ context.Context, sessionID, productID uuid.UUID) (*domain.Cart, error) {
	f.session, f.productID = sessionID, productID
	return f.cart, f.err
}

func (f *fakeCartUC) Clear(_ context.Context, sessionID uuid.UUID) error {
	f.session, f.cleared = sessionID, true
	return f.err
}

func (f *fakeCartUC) Checkout(_ context.Context, req *usecase.CheckoutReq) (*usecase.CreateOrderRes, error) {
	f.checkoutReq = req
	return f.checkoutRes, f.err
}

type fakeCatalogUC struct {
	products   []domain.Product
	product    *domain.Product
	category   *domain.Category
	categories []domain.Category
	filter     usecase.ProductFilter
	input      *usecase.ProductInput
	catInput   *usecase.CategoryInput
	reset      int
	feed       string
	err        error
}

func (f *fakeCatalogUC) ListProducts(_ context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	f.filter = filter
	return f.products, f.err
}

func (f *fakeCatalogUC) GetProduct(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	if f.product == nil {
		return nil, e.NewNotFoundError("product", id.String())
	}
	return f.product, f.err
}

func (f *fakeCatalogUC) CreateProduct(_ context.Context, in *usecase.ProductInput) (*domain.Product, error) {
	f.input = in
	return f.product, f.err
}

func (f *fakeCatalogUC) UpdateProduct(_ context.Context, _ uuid.UUID, in *usecase.ProductInput) (*domain.Product, error) {
	f.input = in
	return f.product, f.err
}

func (f *fakeCatalogUC) DeleteProduct(context.Context, uuid.UUID) error { return f.err }

func (f *fakeCatalogUC) ResetProducts(context.Context) (int, error) { return f.reset, f.err }

func (f *fakeCatalogUC) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeCatalogUC) GetCategory(context.Context, uuid.UUID) (*domain.Category, error) {
	return f.category, f.err
}

func (f *fakeCatalogUC) CreateCategory(_ context.Context, in *usecase.CategoryInput) (*domain.Category, error) {
	f.catInput = in
	return f.category, f.err
}

func (f *fakeCatalogUC) UpdateCategory(_ context.Context, _ uuid.UUID, in *usecase.CategoryInput) (*domain.Category, error) {
	f.catInput = in
	return f.category, f.err
}

func (f *fakeCatalogUC) DeleteCategory(context.Context, uuid.UUID) error { return f.err }

func (f *fakeCatalogUC) ExportFacebookCatalog(_ context.Context, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, f.feed)
	return err
}

type fakeSettingsUC struct {
	whatsApp *domain.WhatsAppConfig
	video    *domain.HeroVideo
	setReq   *usecase.SetWhatsAppReq
	videoURL string
	deleted  bool
	err      error
}

func (f *fakeSettingsUC) GetWhatsApp(context.Context) (*domain.WhatsAppConfig, error) {
	return f.whatsApp, f.err
}

func (f *fakeSettingsUC) SetWhatsApp(_ context.Context, req *usecase.SetWhatsAppReq) (*domain.WhatsAppConfig, error) {
	f.setReq = req
	return f.whatsApp, f.err
}

func (f *fakeSettingsUC) GetHeroVideo(context.Context) (*domain.HeroVideo, error) {
	return f.video, f.err
}

func (f *fakeSettingsUC) SetHeroVideo(_ context.Context, videoURL string) (*domain.HeroVideo, error) {
	f.videoURL = videoURL
	return f.video, f.err
}

func (f *fakeSettingsUC) DeleteHeroVideo(context.Context) error {
	f.deleted = true
	return f.err
}

type fakeVisitorUC struct {
	tracked *usecase.TrackVisitReq
	stats   *domain.VisitorStats
	err     error
}

func (f *fakeVisitorUC) Track(_ context.Context, req *usecase.TrackVisitReq) error {
	f.tracked = req
	return f.err
}

func (f *fakeVisitorUC) Stats(context.Context) (*domain.VisitorStats, error) {
	return f.stats, f.err
}

type fakeMediaUC struct {
	folder string
	files  []usecase.MediaFile
	urls   []string
	err    error
}

func (f *fakeMediaUC) Upload(_ context.Context, folder string, files []usecase.MediaFile) ([]string, error) {
	f.folder, f.files = folder, files
	return f.urls, f.err
}

type fakeConversionUC struct {
	req *usecase.TrackConversionReq
	err error
}

func (f *fakeConversionUC) Track(_ context.Context, req *usecase.TrackConversionReq) error {
	f.req = req
	return f.err
}

type fakeAdmins struct {
	admins map[uuid.UUID]bool
	err    error
}

func (f *fakeAdmins) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	return f.admins[userID], f.err
}

type testServer struct {
	handler     http.Handler
	orders      *fakeOrderUC
	cart        *fakeCartUC
	catalog     *fakeCatalogUC
	settings    *fakeSettingsUC
	visitors    *fakeVisitorUC
	media       *fakeMediaUC
	conversions *fakeConversionUC
	admins      *fakeAdmins
	adminID     uuid.UUID
}

func testConfig() *cfg.Config {
	return &cfg.Config{
		Http: &cfg.HTTPConfig{
			Port:           "8080",
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
			SwaggerURL:     "http://localhost:8080/swagger/doc.json",
		},
		Auth: &cfg.AuthCfg{JWTSecret: testSecret},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		orders:      &fakeOrderUC{},
		cart:        &fakeCartUC{cart: domain.NewCart()},
		catalog:     &fakeCatalogUC{},
		settings:    &fakeSettingsUC{},
		visitors:    &fakeVisitorUC{},
		media:       &fakeMediaUC{},
		conversions: &fakeConversionUC{},
		adminID:     uuid.New(),
	}
	ts.admins = &fakeAdmins{admins: map[uuid.UUID]bool{ts.adminID: true}}

	r := chi.NewRouter()
	NewRouter(r, testConfig(), logger.NewNopLogger()).Init(UseCases{
		Orders:      ts.orders,
		Cart:        ts.cart,
		Catalog:     ts.catalog,
		Settings:    ts.settings,
		Visitors:    ts.visitors,
		Media:       ts.media,
		Conversions: ts.conversions,
		Admins:      ts.admins,
	})
	ts.handler = r
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) adminRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := jsonRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+signToken(t, ts.adminID.String(), time.Hour))
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func signToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func sampleOrder() *domain.Order {
	productID := uuid.New()
	order := domain.NewOrder("Awa Ndiaye", "+237 699 12 34 56", "Douala, Akwa", []domain.OrderItem{
		{
			ProductID:   &productID,
			ProductName: "Canapé Lomé",
			Quantity:    2,
			Price:       150000,
			Product:     &domain.ProductSummary{ID: productID, Name: "Canapé Lomé"},
		},
	})
	order.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return order
}

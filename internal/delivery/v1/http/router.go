package http

import (
	"net/http"

	_ "github.com/DRSN-tech/storefront/docs" // Импорт описания API для swagger
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases — всё, что нужно роутеру для регистрации обработчиков.
type UseCases struct {
	Orders      usecase.OrderUC
	Cart        usecase.CartUC
	Catalog     usecase.CatalogUC
	Settings    usecase.SettingsUC
	Visitors    usecase.VisitorUC
	Media       usecase.MediaUC
	Conversions usecase.ConversionUC
	Admins      usecase.AdminChecker
}

type Router struct {
	router *chi.Mux
	cfg    *cfg.Config
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.Config, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(uc UseCases) {
	r.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(r.logger),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   r.cfg.Http.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", cartSessionHeader, idempotencyHeader},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.router.Get("/health", health)
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.cfg.Http.SwaggerURL), // ссылка на JSON
	))

	auth := NewAuthenticator(uc.Admins, r.cfg.Auth, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.Timeout(r.cfg.Http.RequestTimeout))

		registerOrderRoutes(v1, NewOrderHandler(uc.Orders, r.logger), auth)
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger))

		prHandler := NewProductHandler(uc.Catalog, r.logger)
		registerProductRoutes(v1, prHandler, auth)
		registerCategoryRoutes(v1, NewCategoryHandler(uc.Catalog, r.logger), auth)
		v1.Get("/catalog/facebook-csv", prHandler.facebookFeed)

		registerSettingsRoutes(v1, NewSettingsHandler(uc.Settings, r.logger), auth)
		registerVisitorRoutes(v1, NewVisitorHandler(uc.Visitors, r.logger), auth)
		registerMediaRoutes(v1, NewMediaHandler(uc.Media, r.logger), auth)

		conversionHandler := NewConversionHandler(uc.Conversions, r.logger)
		v1.Post("/conversions/{event}", conversionHandler.trackConversion)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler, auth *Authenticator) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.createOrder)

		or.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Get("/", h.listOrders)
			admin.Get("/{id}", h.getOrder)
			admin.Put("/{id}/status", h.updateStatus)
		})
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Delete("/", h.clearCart)
		cr.Post("/items", h.addItem)
		cr.Put("/items/{productID}", h.updateItem)
		cr.Delete("/items/{productID}", h.removeItem)
		cr.Post("/checkout", h.checkout)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler, auth *Authenticator) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)

		pr.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Post("/", h.createProduct)
			admin.Delete("/reset", h.resetProducts)
			admin.Put("/{id}", h.updateProduct)
			admin.Delete("/{id}", h.deleteProduct)
		})
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler, auth *Authenticator) {
	router.Route("/categories", func(cr chi.Router) {
		cr.Get("/", h.listCategories)
		cr.Get("/{id}", h.getCategory)

		cr.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Post("/", h.createCategory)
			admin.Put("/{id}", h.updateCategory)
			admin.Delete("/{id}", h.deleteCategory)
		})
	})
}

func registerSettingsRoutes(router chi.Router, h *SettingsHandler, auth *Authenticator) {
	router.Get("/whatsapp", h.getWhatsApp)
	router.Get("/hero-video", h.getHeroVideo)

	router.Group(func(admin chi.Router) {
		admin.Use(auth.RequireAdmin)
		admin.Post("/whatsapp", h.setWhatsApp)
		admin.Post("/hero-video", h.setHeroVideo)
		admin.Delete("/hero-video", h.deleteHeroVideo)
	})
}

func registerVisitorRoutes(router chi.Router, h *VisitorHandler, auth *Authenticator) {
	router.Route("/visitors", func(vr chi.Router) {
		vr.Post("/track", h.trackVisit)
		vr.With(auth.RequireAdmin).Get("/stats", h.visitorStats)
	})
}

func registerMediaRoutes(router chi.Router, h *MediaHandler, auth *Authenticator) {
	router.With(auth.RequireAdmin).Post("/media", h.uploadMedia)
}

// health
//
//	@Summary	Проверка доступности
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, healthResponse{Status: "ok"})
}

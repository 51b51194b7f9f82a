package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/facebook"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout      = 10 * time.Second
	shutdownTimeout     = 15 * time.Second
	forcedCloseTimeout  = 3 * time.Second
	kafkaTopicTimeout   = 10 * time.Second
	minioCleanupTimeout = 5 * time.Second
)

// App собирает зависимости витрины и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(forcedCloseTimeout),
	}

	if err := a.init(); err != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if closeErr := a.closer.Close(closeCtx); closeErr != nil {
			logger.Warnf("partial init cleanup: %v", closeErr)
		}
		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	cfg, logger := a.cfg, a.logger

	db, err := initPGDB(logger, cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", db.Close)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), startupTimeout)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		_ = redisClient.Close(redisCtx)
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("redis", redisClient.Close)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	minioCtx, minioCancel := context.WithTimeout(context.Background(), startupTimeout)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		logger.Errorf(err, "failed to initialize MinIO bucket")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	publisher := a.initPublisher()

	// Репозитории
	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverter())
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverter())
	adminRepo := pgdb.NewAdminRepo(db.Pool)
	settingsConv := pgdbConv.NewSettingsConverter()
	whatsAppRepo := pgdb.NewWhatsAppRepo(db.Pool, settingsConv)
	heroVideoRepo := pgdb.NewHeroVideoRepo(db.Pool, settingsConv)
	visitorRepo := pgdb.NewVisitorRepo(db.Pool)

	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewProductConverter(), cfg.Redis, logger)
	cartRepo := redis.NewCartRepo(redisClient, redisConv.NewCartConverter(), cfg.Redis, logger)
	idempotencyRepo := redis.NewIdempotencyRepo(redisClient, cfg.Redis)

	// Очистка загруженных файлов переживает отмену запроса, но не завершение приложения
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	mediaInfra := minioInfra.NewMinioInfrastructure(s3Repo.NewMediaRepo(minioClient), cfg.Minio, logger, cleanupCtx)
	a.closer.Add("minio cleanup", func(ctx context.Context) error {
		defer cleanupCancel()
		waitCtx, cancel := context.WithTimeout(ctx, minioCleanupTimeout)
		defer cancel()
		if err := mediaInfra.WaitForCleanup(waitCtx); err != nil {
			logger.Warnf("MinIO cleanup did not finish before shutdown, some orphaned objects may remain: %v", err)
		}
		return nil
	})

	conversions := facebook.NewConversionsClient(cfg.Facebook, logger)
	if !cfg.Facebook.Enabled() {
		logger.Infof("facebook pixel is not configured, conversion relay disabled")
	}

	// Usecase'ы
	txManager := tr.NewManager(db.Pool)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, txManager, idempotencyRepo, publisher, logger)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, cacheRepo, cfg.Store, logger)
	cartUC := usecase.NewCartUC(cartRepo, catalogUC, orderUC, logger)
	settingsUC := usecase.NewSettingsUC(whatsAppRepo, heroVideoRepo, txManager, logger)
	visitorUC := usecase.NewVisitorUC(visitorRepo)
	mediaUC := usecase.NewMediaUC(mediaInfra, cfg.Minio, logger)
	conversionUC := usecase.NewConversionUC(conversions, cfg.Store, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg, logger)
	router.Init(v1Http.UseCases{
		Orders:      orderUC,
		Cart:        cartUC,
		Catalog:     catalogUC,
		Settings:    settingsUC,
		Visitors:    visitorUC,
		Media:       mediaUC,
		Conversions: conversionUC,
		Admins:      adminRepo,
	})

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("http server", a.httpSrv.Stop)

	return nil
}

// initPublisher подключает Kafka, если заданы брокеры. Без брокеров события заказов не публикуются.
func (a *App) initPublisher() usecase.EventPublisher {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("KAFKA_BROKERS is empty, order events are disabled")
		return kafka.NewNoopPublisher(a.logger)
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(kafkaTopicTimeout); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}
	a.closer.Add("kafka producer", producer.Close)

	return producer
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server listening on %s", a.httpSrv.Addr())
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("Received %s, stopping gracefully...", sig)
	}

	// === Graceful shutdown ===
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		_ = db.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

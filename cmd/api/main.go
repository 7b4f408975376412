package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/farmshop-si/farmshop-backend/api/controllers"
	"github.com/farmshop-si/farmshop-backend/api/routes"
	"github.com/farmshop-si/farmshop-backend/internal/analytics"
	"github.com/farmshop-si/farmshop-backend/internal/auth"
	cartsvc "github.com/farmshop-si/farmshop-backend/internal/cart"
	"github.com/farmshop-si/farmshop-backend/internal/catalog"
	checkoutsvc "github.com/farmshop-si/farmshop-backend/internal/checkout"
	"github.com/farmshop-si/farmshop-backend/internal/gifts"
	"github.com/farmshop-si/farmshop-backend/pkg/auth/session"
	"github.com/farmshop-si/farmshop-backend/pkg/config"
	"github.com/farmshop-si/farmshop-backend/pkg/db"
	"github.com/farmshop-si/farmshop-backend/pkg/flags"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/metrics"
	"github.com/farmshop-si/farmshop-backend/pkg/migrate"
	"github.com/farmshop-si/farmshop-backend/pkg/pubsub"
	"github.com/farmshop-si/farmshop-backend/pkg/redis"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	requireResource(ctx, logg, "dev migrations", migrate.MaybeRunDev(ctx, cfg, logg, dbClient))

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	requireResource(ctx, logg, "redis", err)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(ctx, "error closing redis", err)
		}
	}()

	pubsubClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
	requireResource(ctx, logg, "pubsub", err)
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(ctx, "error closing pubsub", err)
		}
	}()

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	giftMetrics := metrics.NewGiftMetrics(registry)
	analyticsMetrics := metrics.NewAnalyticsMetrics(registry)

	flagRegistry, err := flags.NewRegistry(flags.NewRedisStore(redisClient), logg)
	requireResource(ctx, logg, "feature flag registry", err)

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	requireResource(ctx, logg, "session manager", err)

	authService, err := auth.NewService(auth.ServiceParams{
		Admin:          cfg.Admin,
		JWTConfig:      cfg.JWT,
		RateLimit:      cfg.AuthLimit,
		SessionManager: sessionManager,
		Limiter:        redisClient,
		Logger:         logg,
	})
	requireResource(ctx, logg, "auth service", err)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo, logg)
	requireResource(ctx, logg, "catalog service", err)

	giftService, err := gifts.NewService(gifts.NewRepository(dbClient.DB()), catalogRepo, logg, giftMetrics)
	requireResource(ctx, logg, "gift service", err)

	publisher, err := analytics.NewPublisher(pubsubClient.EventsPublisher(), flagRegistry, logg, analyticsMetrics)
	requireResource(ctx, logg, "analytics publisher", err)

	cartRepo := cartsvc.NewRepository(dbClient.DB())
	cartService, err := cartsvc.NewService(cartRepo, catalogRepo, giftService, logg)
	requireResource(ctx, logg, "cart service", err)

	checkoutService, err := checkoutsvc.NewService(
		checkoutsvc.NewRepository(dbClient.DB()),
		cartRepo,
		flagRegistry,
		publisher,
		dbClient,
		cfg.Checkout,
		logg,
	)
	requireResource(ctx, logg, "checkout service", err)

	handler := routes.NewRouter(routes.Params{
		Config:   cfg,
		Logger:   logg,
		Metrics:  httpMetrics,
		Gatherer: registry,
		HealthChecks: map[string]controllers.Pinger{
			"database": dbClient,
			"redis":    redisClient,
			"pubsub":   pubsubClient,
		},
		FlagRegistry:    flagRegistry,
		SessionChecker:  sessionManager,
		AuthService:     authService,
		CatalogService:  catalogService,
		GiftService:     giftService,
		CartService:     cartService,
		CheckoutService: checkoutService,
		Events:          publisher,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, "resource not working: "+resource, err)
	os.Exit(1)
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/storefront/checkout-service/internal/app"
	"github.com/storefront/checkout-service/internal/config"
	"github.com/storefront/checkout-service/internal/events"
	"github.com/storefront/checkout-service/internal/handler"
	"github.com/storefront/checkout-service/internal/payment"
	"github.com/storefront/checkout-service/internal/postgres"
	"github.com/storefront/checkout-service/internal/repo"
	"github.com/storefront/checkout-service/internal/service"
	"github.com/storefront/checkout-service/pkg/cache"
	"github.com/storefront/checkout-service/pkg/trm"

	_ "github.com/storefront/checkout-service/docs"

	"github.com/joho/godotenv"
)

// @title           Checkout Service API
// @version         1.0
// @description     Cart, checkout and order settlement HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	panicIfErr("failed to run migrations", postgres.Migrate(conf.Postgres))

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	cartRepo := repo.NewCartRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	stripeClient := payment.NewClient(conf.Stripe)
	publisher := events.NewPublisher(conf.Kafka)

	calc, err := service.NewCalculator(conf.Pricing)
	panicIfErr("invalid pricing config", err)

	cartService := service.NewCartService(logger, txManager, cartRepo)
	checkoutService := service.NewCheckoutService(logger, cartRepo, catalogRepo, stripeClient, calc)
	reconcileService := service.NewReconcileService(
		logger, txManager, orderRepo, cartRepo, cartService,
		catalogRepo, calc, orderCache, publisher,
	)

	httpHandler := handler.NewHTTPHandler(logger, cartService, checkoutService, reconcileService, stripeClient, orderCache)
	webhookHandler := handler.NewWebhookHandler(logger, stripeClient, reconcileService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetStarters(orderCache)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

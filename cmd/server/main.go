package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bazaar/internal/account"
	"bazaar/internal/cart"
	"bazaar/internal/catalog"
	"bazaar/internal/events"
	httptransport "bazaar/internal/http"
	"bazaar/internal/jwtsession"
	"bazaar/internal/orders"
	"bazaar/internal/platform/config"
	"bazaar/internal/platform/httpserver"
	"bazaar/internal/platform/logger"
	"bazaar/internal/platform/postgres"
	platformredis "bazaar/internal/platform/redis"
	"bazaar/internal/risk"
	"bazaar/internal/risk/handler"
	"bazaar/internal/risk/justify"
	"bazaar/internal/risk/metrics"
	"bazaar/internal/risk/ports"
	"bazaar/internal/risk/store"
	"bazaar/internal/session"
)

// main wires dependencies and owns the process lifecycle. Every external
// system is optional: without a database the store and gateways run in
// memory, without Redis the session counters do, and without brokers no
// events are published. Scoring works the same in every configuration.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var (
		catalogGW   ports.CatalogGateway
		ordersGW    ports.OrdersGateway
		cartGW      ports.CartGateway
		accountGW   ports.AccountGateway
		assessments ports.AssessmentStore
	)
	if db != nil {
		catalogGW = catalog.NewPostgres(db)
		ordersGW = orders.NewPostgres(db)
		cartGW = cart.NewPostgres(db)
		accountGW = account.NewPostgres(db)
		assessments = store.NewPostgres(db)
	} else {
		log.Warn("no database configured, assessments kept in memory")
		catalogGW = catalog.NewInMemory()
		ordersGW = orders.NewInMemory()
		cartGW = cart.NewInMemory()
		accountGW = account.NewInMemory()
		assessments = store.NewInMemory()
	}

	var activity ports.SessionActivityGateway
	if redisClient != nil {
		activity = session.NewRedisActivity(redisClient.Client)
	} else {
		log.Warn("no redis configured, session counters kept in memory")
		activity = session.NewMemoryActivity()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := justify.NewWorker(justify.NewTemplateGenerator(), assessments, cfg.JustifyQueueSize, log)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("justification worker stopped", "error", err)
		}
	}()

	opts := []risk.Option{
		risk.WithDispatcher(worker),
		risk.WithMetrics(metrics.New()),
		risk.WithSessionActivity(activity),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := events.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = publisher.Close(flushCtx)
		}()
		opts = append(opts, risk.WithEvents(publisher))
	}

	enricher := risk.NewEnricher(catalogGW, ordersGW, cartGW, log)
	collector := risk.NewCollector(accountGW, ordersGW, activity, log)
	svc, err := risk.NewService(enricher, collector, assessments, log, opts...)
	if err != nil {
		log.Error("service wiring failed", "error", err)
		os.Exit(1)
	}

	parser := jwtsession.NewParser(cfg.JWTSigningKey)
	router := httptransport.NewRouter(handler.New(svc, log), parser)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting bazaar risk engine", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

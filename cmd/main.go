package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/config"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/endpoints"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/service"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/transport"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/account"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/events"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/flight"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/flight/seed"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/kvstore"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/logger"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/ratelimit"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/reservation"
	"github.com/redis/go-redis/v9"
)

type publisher interface {
	events.Publisher
	io.Closer
}

// @title           FlyAir Flight Service API
// @version         0.0.1
// @description     flyair-flight-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	store, redisClient := initStore(cfg)
	defer closeQuietly(ctx, "store", store)

	eventPublisher := initPublisher(cfg)
	defer closeQuietly(ctx, "event publisher", eventPublisher)

	catalog := flight.NewCatalog(store, flight.NewGenerator(), seed.Flights)
	catalogService := service.NewCatalogService(catalog, eventPublisher, cfg.Kafka.CatalogTopic)

	slog.InfoContext(ctx, "flight catalog ready", slog.Int("flights", catalogService.Initialize(ctx)))

	authenticator := account.NewAuthenticator(store, initLoginLimiter(cfg, redisClient), eventPublisher,
		account.Config{
			NotificationsTopic: cfg.Kafka.NotificationsTopic,
			BcryptCost:         cfg.Auth.BcryptCost,
		})

	// init service endpoint
	endpts := endpoints.Endpoints{
		Flight: endpoints.MakeFlightEndpoint(catalogService),
		Reservation: endpoints.MakeReservationEndpoint(service.NewReservationService(
			catalog, reservation.NewStore(store), eventPublisher, cfg.Kafka.ReservationTopic)),
		Account: endpoints.MakeAccountEndpoint(service.NewAccountService(authenticator)),
	}

	var waitGroup sync.WaitGroup

	scheduler := flight.NewScheduler(catalogService)
	stopRefresh := func() {}

	if cfg.Catalog.AutoRefresh {
		stop, err := scheduler.Start(ctx, cfg.Catalog.RefreshInterval, cfg.Catalog.RefreshCount)
		if err != nil {
			slog.ErrorContext(ctx, "failed to start auto refresh", slog.String("error", err.Error()))
		} else {
			stopRefresh = stop
		}
	}

	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg, transport.MakeHTTPRouter(&cfg, endpts, authenticator))
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	stopRefresh()
	scheduler.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config, router http.Handler) {
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

// initStore returns the key-value store. The redis client is nil for the memory driver.
func initStore(cfg config.Config) (interface {
	kvstore.Store
	io.Closer
}, *redis.Client) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		slog.Warn("using in-memory store, data is lost on restart")
		return kvstore.NewMemoryStore(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	return kvstore.NewRedisStore(redisClient), redisClient
}

func initPublisher(cfg config.Config) publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NopPublisher{}
	}

	return events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.BatchTimeout)
}

func initLoginLimiter(cfg config.Config, redisClient *redis.Client) account.Limiter {
	if redisClient == nil || cfg.Auth.LoginRateLimit <= 0 {
		return nil
	}

	return ratelimit.NewPerMinute(redis_rate.NewLimiter(redisClient), cfg.Auth.LoginRateLimit)
}

func closeQuietly(ctx context.Context, name string, c io.Closer) {
	if err := c.Close(); err != nil {
		slog.WarnContext(ctx, "failed to close "+name, slog.String("error", err.Error()))
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/charter-quote-service/internal/app/config"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/app/endpoints"
	"github.com/ijalalfrz/charter-quote-service/internal/app/service"
	"github.com/ijalalfrz/charter-quote-service/internal/app/transport"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/catalog"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/estimator"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/logger"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/optimizer"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/pricing"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/quotepdf"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/scheduler"
	httptransport "github.com/ijalalfrz/charter-quote-service/internal/pkg/transport/http"
	"github.com/redis/go-redis/v9"
)

// @title           Charter Quote Service API
// @version         0.0.1
// @description     charter-quote-service
// @host      localhost:8080
// @BasePath  /api
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

// app holds everything built at startup.
type app struct {
	endpoints endpoints.Endpoints
	estimator *estimator.Estimator
	limiter   httptransport.RateLimiter
	redis     *redis.Client
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	application := makeApp(ctx, &cfg)
	if application.redis != nil {
		defer application.redis.Close()
	}

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg, application)
	}()

	if cfg.ML.WarmOnStart {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()

			if err := application.estimator.EnsureModel(ctx); err != nil {
				slog.ErrorContext(ctx, "failed to warm price model", slog.String("error", err.Error()))
			}
		}()
	}

	if cfg.ML.RetrainSchedule != "" {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			startRetrainScheduler(ctx, cfg, application.estimator)
		}()
	}

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
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config, application app) {
	router := transport.MakeHTTPRouter(&cfg, application.endpoints, application.limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...",
		slog.Int("port", cfg.HTTP.Port),
		slog.String("base_path", cfg.HTTP.BasePath))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func startRetrainScheduler(ctx context.Context, cfg config.Config, priceEstimator *estimator.Estimator) {
	retrain := scheduler.JobFunc{
		JobName: "price-model-retrain",
		Run: func(ctx context.Context) error {
			_, err := priceEstimator.Train(ctx, cfg.ML.TrainSamples)
			return err
		},
	}

	sched, err := scheduler.New(cfg.ML.RetrainSchedule, retrain)
	if err != nil {
		slog.ErrorContext(ctx, "retraining disabled", slog.String("error", err.Error()))
		return
	}

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "retrain scheduler stopped", slog.String("error", err.Error()))
	}
}

func makeApp(ctx context.Context, cfg *config.Config) app {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	catalogs, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load catalog", slog.String("error", err.Error()))
		panic(err)
	}

	slog.InfoContext(ctx, "catalog loaded",
		slog.Int("airports", len(catalogs.Airports.All())),
		slog.Int("aircraft", len(catalogs.Fleet.All())))

	application := app{
		redis: initRedis(cfg),
	}

	// redis_rate needs redis, without it the limiter stays a nil interface
	if application.redis != nil && cfg.RateLimit.RPS > 0 {
		application.limiter = redis_rate.NewLimiter(application.redis)
	}

	engine := pricing.NewEngine(catalogs.Airports, catalogs.Fleet)
	trainer := estimator.NewTrainer(engine, catalogs.Airports, catalogs.Fleet, cfg.ML.Seed)
	application.estimator = estimator.New(trainer, initModelStore(cfg, application.redis), cfg.ML.BootstrapSamples)

	// init service endpoint
	application.endpoints = endpoints.Endpoints{
		QuoteEndpoint:     makeQuoteEndpoint(catalogs, engine, application.estimator),
		OptimizerEndpoint: makeOptimizerEndpoint(catalogs, cfg),
		EstimatorEndpoint: endpoints.MakeEstimatorEndpoint(
			service.NewEstimatorService(application.estimator, cfg.ML.TrainSamples)),
	}

	return application
}

func initRedis(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled, using file model store and no rate limiting")
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
}

func initModelStore(cfg *config.Config, redisClient *redis.Client) estimator.ModelStore {
	if cfg.ML.ModelStore == config.ModelStoreRedis {
		if redisClient == nil {
			panic("ML_MODEL_STORE=redis requires REDIS_ADDR")
		}

		return estimator.NewRedisStore(redisClient, cfg.ML.ModelKey)
	}

	return estimator.NewFileStore(cfg.ML.ModelPath)
}

func makeQuoteEndpoint(catalogs catalog.Catalog, engine *pricing.Engine,
	priceEstimator *estimator.Estimator) endpoints.QuoteEndpoint {
	quoteService := service.NewQuoteService(catalogs, engine, priceEstimator,
		quotepdf.NewRenderer(catalogs.Airports))

	return endpoints.MakeQuoteEndpoint(quoteService)
}

func makeOptimizerEndpoint(catalogs catalog.Catalog, cfg *config.Config) endpoints.OptimizerEndpoint {
	assigner := optimizer.New(catalogs.Airports.Distance, cfg.Optimizer.PenaltyNM)

	return endpoints.MakeOptimizerEndpoint(
		service.NewOptimizerService(assigner, cfg.Optimizer.MaxConcurrentSolves))
}

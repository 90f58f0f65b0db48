package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/address"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/cache"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/cosmos"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/indexer"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/logging"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/metrics"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/service"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/transport"
)

const averagesTTL = 5 * time.Minute

var config struct {
	Addr            string        `long:"addr" env:"EXPLORER_API_ADDR" description:"http listen addr" default:":8080"`
	IndexerURL      string        `long:"indexer-url" env:"EXPLORER_API_INDEXER_URL" description:"indexer REST base url" required:"true"`
	IndexerRPS      int           `long:"indexer-rps" env:"EXPLORER_API_INDEXER_RPS" description:"max indexer requests per second, 0 disables throttling" default:"50"`
	IndexerTimeout  time.Duration `long:"indexer-timeout" env:"EXPLORER_API_INDEXER_TIMEOUT" description:"indexer request timeout" default:"15s"`
	NodeURL         string        `long:"node-url" env:"EXPLORER_API_NODE_URL" description:"chain LCD base url used when the indexer is down"`
	NodeProbe       time.Duration `long:"node-probe-interval" env:"EXPLORER_API_NODE_PROBE_INTERVAL" description:"node health probe interval" default:"30s"`
	Chain           string        `long:"chain" env:"EXPLORER_API_CHAIN" description:"chain name of rebuilt transactions" default:"pocket-lego-testnet"`
	CacheBackend    string        `long:"cache" env:"EXPLORER_API_CACHE" description:"network averages cache" choice:"memory" choice:"redis" default:"memory"`
	RedisAddr       string        `long:"redis-addr" env:"EXPLORER_API_REDIS_ADDR" description:"redis addr" default:"localhost:6379"`
	RedisPassword   string        `long:"redis-password" env:"EXPLORER_API_REDIS_PASSWORD" description:"redis password"`
	RedisDB         int           `long:"redis-db" env:"EXPLORER_API_REDIS_DB" description:"redis database" default:"0"`
	LogLevel        string        `long:"log-level" env:"EXPLORER_API_LOG_LEVEL" description:"log level" default:"info"`
	LogEncoding     string        `long:"log-encoding" env:"EXPLORER_API_LOG_ENCODING" description:"log encoding" choice:"json" choice:"console" default:"json"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"EXPLORER_API_SHUTDOWN_TIMEOUT" description:"graceful shutdown timeout" default:"10s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	logger, err := logging.New(config.LogLevel, config.LogEncoding)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	indexerClient := indexer.NewClient(indexer.Opts{
		BaseURL: config.IndexerURL,
		Timeout: config.IndexerTimeout,
		RPS:     config.IndexerRPS,
		Metrics: metrics.NewIndexerClient(),
		Logger:  logger,
	})

	var blocks service.BlockSource
	if config.NodeURL != "" {
		node := cosmos.NewClient(cosmos.Opts{
			BaseURL: config.NodeURL,
			Metrics: metrics.NewRPCClient(config.Chain),
			Logger:  logger,
		})
		go func() {
			if err := node.Connect(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("node unavailable, probing in background", zap.Error(err))
			}
			node.Monitor(ctx, config.NodeProbe)
		}()
		blocks = node
	}

	fallback := service.DefaultFallbackConfig()
	fallback.Chain = config.Chain
	transactions := service.NewTransactionService(indexerClient, blocks, fallback, metrics.NewTransactionService(), logger)
	defer transactions.Close()

	averagesCache, closeCache, err := newAveragesCache(ctx, logger)
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.Error(err))
	}
	defer closeCache()
	analyticsService := service.NewAnalyticsService(indexerClient, averagesCache, logger)
	defer analyticsService.Close()

	handler := transport.NewHandler(
		transactions,
		indexerClient,
		analyticsService,
		address.Default(),
		metrics.NewHTTPHandler(),
		logger,
	)
	router := handler.NewRouter()
	router.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.Addr),
		zap.String("indexer", config.IndexerURL),
		zap.Bool("node_fallback", blocks != nil),
		zap.String("cache", config.CacheBackend))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func newAveragesCache(ctx context.Context, logger *zap.Logger) (service.AveragesCache, func(), error) {
	cacheMetrics := metrics.NewCache("network_averages")
	if config.CacheBackend != "redis" {
		memory := cache.NewMemory[model.NetworkAverages](averagesTTL, nil, cacheMetrics)
		go memory.PurgeEvery(ctx, averagesTTL)
		return memory, func() {}, nil
	}

	rdb, err := cache.Dial(ctx, cache.RedisOpts{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}
	return cache.NewRedis[model.NetworkAverages](rdb, "pokt_explorer:network_averages:", averagesTTL, cacheMetrics), closeFn, nil
}

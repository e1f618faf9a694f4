package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/internal/repository"
	"github.com/cloud-ru/mcp-realestate-go/internal/server"
	"github.com/cloud-ru/mcp-realestate-go/internal/tools"
	"github.com/cloud-ru/mcp-realestate-go/internal/tracing"
	"github.com/cloud-ru/mcp-realestate-go/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запуск HTTP сервера инструментов",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Порт сервера (переопределяет PORT)")
	return cmd
}

func runServe(ctx context.Context, port int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if port > 0 {
		cfg.Port = port
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации трейсинга: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("failed to shutdown tracing")
		}
	}()

	cache := newCache(ctx, cfg, log)

	registry := tools.NewRegistry(tools.Deps{
		Config: cfg,
		Tracer: tracer,
		Cache:  cache,
		Log:    log,
	})

	api := server.NewWebAPI(log, server.Config{
		Addr:     cfg.Addr(),
		Registry: registry,
	})
	return api.Start()
}

// newCache выбирает Redis, если он задан и доступен, иначе кэш в памяти
func newCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		log.Info().Int("size", cfg.CacheSize).Dur("ttl", cfg.CacheTTL).Msg("using in-memory result cache")
		return repository.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, falling back to in-memory cache")
		_ = redisCache.Close()
		return repository.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL)
	}

	log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("using redis result cache")
	return redisCache
}

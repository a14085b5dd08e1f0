package main

import (
	"context"
	"log/slog"
	"os"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	"gatekeeper/internal/delivery/api"
	apimiddleware "gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/response"
	"gatekeeper/internal/delivery/api/router/handler"
	"gatekeeper/internal/delivery/worker"
	workerhandler "gatekeeper/internal/delivery/worker/handler"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/audit"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/cache"
	"gatekeeper/internal/infra/csrf"
	logs "gatekeeper/internal/infra/log"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/infra/persistence/postgres"
	"gatekeeper/internal/infra/ratelimit"
	"gatekeeper/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Backends are chosen from config before the graph is built so unused clients are never dialed.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(appOptions(cfg)).Run()
}

func appOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(cfg),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
}

func injectInfra(cfg *config.Config) fx.Option {
	options := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
			service.NewSystemClock,
		),
	}
	if usesPostgres(cfg) {
		options = append(options, fx.Provide(postgres.New))
	}
	if usesRedis(cfg) {
		options = append(options, fx.Provide(cache.New))
	}

	return fx.Options(options...)
}

func injectRepo(cfg *config.Config) fx.Option {
	principals := fx.Provide(memory.NewPrincipalRepository)
	if cfg.Storage.Principals == config.BackendPostgres {
		principals = fx.Provide(postgres.NewPrincipalRepository)
	}

	events := fx.Provide(memory.NewAuditRepository)
	if cfg.Storage.Audit == config.BackendPostgres {
		events = fx.Provide(postgres.NewAuditRepository)
	}

	return fx.Options(principals, events)
}

func injectService(cfg *config.Config) fx.Option {
	revocations := fx.Provide(auth.NewMemoryRevocationStore)
	if cfg.Storage.Revocation == config.BackendRedis {
		revocations = fx.Provide(auth.NewRedisRevocationStore)
	}

	limitStore := fx.Provide(ratelimit.NewMemoryStore)
	if cfg.RateLimit.Backend == config.BackendRedis {
		limitStore = fx.Provide(ratelimit.NewRedisStore)
	}

	return fx.Options(
		revocations,
		limitStore,
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewJWTService,
			csrf.NewGuard,
			ratelimit.NewRegistryFromConfig,
			ratelimit.NewLimiter,
			ratelimit.NewLockout,
			audit.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAuditService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			response.NewSessionCookies,
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewCSRFMiddleware,
			apimiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewWebhookHandler,
			workerhandler.NewMaintenanceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func usesPostgres(cfg *config.Config) bool {
	return cfg.Storage.Principals == config.BackendPostgres || cfg.Storage.Audit == config.BackendPostgres
}

func usesRedis(cfg *config.Config) bool {
	return cfg.Storage.Revocation == config.BackendRedis || cfg.RateLimit.Backend == config.BackendRedis
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

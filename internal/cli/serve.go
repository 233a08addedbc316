package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/litreview/internal/api/http"
	"github.com/spec-kit/litreview/internal/api/http/handlers"
	"github.com/spec-kit/litreview/internal/auth"
	"github.com/spec-kit/litreview/internal/config"
	"github.com/spec-kit/litreview/internal/events"
	"github.com/spec-kit/litreview/internal/observability"
	"github.com/spec-kit/litreview/internal/persistence"
	"github.com/spec-kit/litreview/internal/render"
	"github.com/spec-kit/litreview/internal/repository"
	"github.com/spec-kit/litreview/internal/service"
	"github.com/spec-kit/litreview/internal/worker"
)

var skipMigrations bool

// NewServeCommand starts the HTTP API.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
	return cmd
}

func runServer(parent context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error("failed to connect postgres", zap.Error(err))
		return err
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && !skipMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.MigrateUp, logger); err != nil {
			logger.Error("failed to run migrations", zap.Error(err))
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	app := newApp(cfg, logger, pg, redis)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("version", cfg.App.Version))
		errCh <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		logger.Error("fiber listen", zap.Error(err))
		return err
	case <-waitForShutdown(logger):
	}

	return app.Shutdown()
}

// newApp wires repositories, services and handlers into a fiber app.
func newApp(cfg *config.Config, logger *zap.Logger, pg *persistence.Postgres, redis *persistence.Redis) *fiber.App {
	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	followRepo := repository.NewFollowRepository(pool)
	feedRepo := repository.NewFeedRepository(pool)
	transactor := repository.NewTransactor(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger), logger)

	blocklist := auth.NewRedisBlocklist(redis.Client, cfg.Auth.BlocklistPrefix)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:  userRepo,
		Blocklist: blocklist,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		ReviewRepo: reviewRepo,
		Dispatcher: dispatcher,
	})
	reviewService := service.NewReviewService(service.ReviewDependencies{
		TicketRepo: ticketRepo,
		ReviewRepo: reviewRepo,
		Transactor: transactor,
		Dispatcher: dispatcher,
	})
	followService := service.NewFollowService(service.FollowDependencies{
		UserRepo:   userRepo,
		FollowRepo: followRepo,
		Dispatcher: dispatcher,
	})
	feedService := service.NewFeedService(feedRepo)

	metrics := observability.NewMetrics()
	presenter := handlers.NewPresenter(render.NewRenderer())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService, reviewService, presenter),
		Reviews:        handlers.NewReviewsHandler(reviewService, presenter),
		Feed:           handlers.NewFeedHandler(feedService, presenter),
		Subscriptions:  handlers.NewSubscriptionsHandler(followService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), userRepo, blocklist),
	})
	return app
}

func waitForShutdown(logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", zap.String("signal", sig.String()))
		close(done)
	}()
	return done
}

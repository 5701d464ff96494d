package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "afdian_adapter/docs" // generated by swag init
	"afdian_adapter/internal/adapter/http/handlers"
	"afdian_adapter/internal/adapter/persistence/repository"
	"afdian_adapter/internal/infrastructure/config"
	"afdian_adapter/internal/infrastructure/database"
	"afdian_adapter/internal/infrastructure/logger"
	"afdian_adapter/internal/infrastructure/metrics"
	"afdian_adapter/internal/infrastructure/platform"
	"afdian_adapter/internal/usecase"
	"afdian_adapter/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultConfigFile = "config.yaml"
	shutdownTimeout   = 30 * time.Second
)

// Options overrides collaborators of the application. Zero values fall back
// to the production implementations.
type Options struct {
	Client     interfaces.IPlatformClient
	Handler    interfaces.IEventHandler
	Reporter   interfaces.IErrorReporter
	Deliveries interfaces.IDeliveryRepository
	Logger     *logrus.Logger
}

// App is the wired application.
type App struct {
	Router     *gin.Engine
	Dispatcher *usecase.EventDispatcher
	Bots       *usecase.BotConnector
}

// NewApp wires the usecases and connects the configured bots.
func NewApp(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	metrics.Register()

	client := opts.Client
	if client == nil {
		client = platform.NewAfdianClient(cfg.Webhook.RequestTimeout, log)
	}
	api := usecase.NewAfdianAPIUseCase(client, usecase.APIOptions{
		APIBase: cfg.APIBase,
		Method:  cfg.APIMethod,
		Timeout: cfg.Webhook.RequestTimeout,
	}, log)

	bots := usecase.NewBotConnector(usecase.NewBotRegistry(), api, log)
	if err := bots.ConnectAll(ctx, cfg.Bots); err != nil {
		return nil, fmt.Errorf("connect bots: %w", err)
	}

	handler := opts.Handler
	if handler == nil {
		handler = usecase.NewLoggingEventHandler(log)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = usecase.NewLoggingErrorReporter(log)
	}
	dispatcher := usecase.NewEventDispatcher(handler, reporter, log)

	deliveries := opts.Deliveries
	if deliveries == nil {
		deliveries = repository.NoopDeliveryRepository{}
	}

	webhook := usecase.NewWebhookUseCase(
		bots,
		usecase.NewOrderVerifier(api, cfg.Webhook.VerifyTimeout),
		dispatcher,
		deliveries,
		usecase.WebhookPolicy{
			HookOnlyBypass:       cfg.Webhook.HookOnlyBypass,
			AutoRegisterHookBots: cfg.Webhook.AutoRegisterHookBots,
		},
		log,
	)

	router := NewRouter(cfg, handlers.NewWebhookHandler(webhook), handlers.NewBotHandler(bots, api, deliveries))
	return &App{Router: router, Dispatcher: dispatcher, Bots: bots}, nil
}

// Shutdown waits for running event tasks.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Dispatcher.Shutdown(ctx)
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(cfg *config.Config, webhookHandler *handlers.WebhookHandler, botHandler *handlers.BotHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	addSystemRoutes(router)
	addWebhookRoutes(router, cfg.WebhookBasePath(), webhookHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBotRoutes(v1, cfg.API.Token, botHandler)
	return router
}

// Run will start the server
func Run() {
	cfg, err := config.Load(DefaultConfigFile)
	if err != nil {
		logrus.WithError(err).Fatal("[afdian] load config failed")
	}
	log := logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deliveries, err := newDeliveryRepository(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("[afdian] delivery ledger unavailable")
	}

	app, err := NewApp(ctx, cfg, Options{Deliveries: deliveries, Logger: log})
	if err != nil {
		log.WithError(err).Fatal("[afdian] startup failed")
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("[afdian] http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to startup the application")
		}
	}()

	<-ctx.Done()
	log.Info("[afdian] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[afdian] http server shutdown failed")
	}
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[afdian] event tasks did not finish")
	}
	log.Info("[afdian] shutdown complete")
}

func newDeliveryRepository(ctx context.Context, cfg *config.Config) (interfaces.IDeliveryRepository, error) {
	if !cfg.Deliveries.Enabled {
		return repository.NoopDeliveryRepository{}, nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	return repository.NewDeliveryDynamoRepository(ddb, cfg.Deliveries.Table), nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/catalog"
	"github.com/ignatzorin/proposal-desk/internal/config"
	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/goroutine"
	"github.com/ignatzorin/proposal-desk/internal/http/router"
	"github.com/ignatzorin/proposal-desk/internal/http/spa"
	"github.com/ignatzorin/proposal-desk/internal/infrastructure/persistence"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/handler"
	"github.com/ignatzorin/proposal-desk/internal/logger"
	"github.com/ignatzorin/proposal-desk/internal/metrics"
	"github.com/ignatzorin/proposal-desk/internal/render"
	"github.com/ignatzorin/proposal-desk/internal/service"
	"github.com/ignatzorin/proposal-desk/internal/usecase/builder"
	"github.com/ignatzorin/proposal-desk/internal/usecase/client"
	"github.com/ignatzorin/proposal-desk/internal/usecase/dashboard"
	"github.com/ignatzorin/proposal-desk/internal/usecase/proposal"
	"github.com/ignatzorin/proposal-desk/internal/ws"
)

const (
	cacheCleanupInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

// App связывает хранилища, сценарии и HTTP роутер.
type App struct {
	cfg     *config.Config
	Engine  *gin.Engine
	Hub     *ws.Hub
	Catalog *catalog.Store
	Metrics *metrics.Metrics
}

// New собирает зависимости. Фоновые горутины (хаб, очистка кэша, наблюдатель
// каталога) живут до отмены ctx.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Get()

	categories := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		categories = loaded
	}
	catalogStore := catalog.NewStore(categories)

	var seed service.SeedData
	if cfg.SeedData {
		seed = service.NewSeedData(time.Now())
	}

	// Хранилища в памяти процесса.
	cache := service.NewCacheService(ctx, cacheCleanupInterval)
	proposalRepo := persistence.NewProposalRepositoryAdapter(seed.Proposals)
	clientRepo := persistence.NewClientRepositoryAdapter(seed.Clients)
	sessionRepo := persistence.NewBuilderSessionRepositoryAdapter(cache, cfg.BuilderSessionTTL)
	handoffStore := persistence.NewHandoffStoreAdapter(cache)
	notificationRepo := persistence.NewNotificationRepositoryAdapter(seed.Notifications, cfg.NotificationLimit)

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	goroutine.SafeGo("ws-hub", hub.Run)

	notificationService := service.NewNotificationService(notificationRepo, hub)

	m := metrics.New()
	m.RegisterGauge("websocket_clients", "Connected WebSocket clients.", func() float64 {
		return float64(hub.ClientCount())
	})
	m.RegisterGauge("cache_entries", "Entries in the in-memory view cache.", func() float64 {
		return float64(cache.Len())
	})

	if cfg.CatalogWatch {
		watcher, err := catalog.NewWatcher(cfg.CatalogPath, catalogStore, log)
		if err != nil {
			return nil, fmt.Errorf("app: не удалось запустить наблюдение за каталогом: %w", err)
		}
		watcher.OnReload(func(int) { m.CatalogReloaded() })
		goroutine.SafeGoWithContext(ctx, "catalog-watcher", watcher.Run)
	}

	renderer, err := render.NewRenderer(render.DefaultAgency)
	if err != nil {
		return nil, err
	}

	// Сценарии.
	deps := proposal.Deps{Notifier: notificationService, Views: cache}
	var clock builder.Clock

	proposalHandler := handler.NewProposalHandler(
		proposal.NewListProposalsUseCase(proposalRepo),
		proposal.NewGetProposalUseCase(proposalRepo),
		proposal.NewCreateProposalUseCase(proposalRepo, clientRepo, deps),
		proposal.NewUpdateProposalStatusUseCase(proposalRepo, deps),
		proposal.NewDeleteProposalUseCase(proposalRepo, deps),
		proposal.NewBulkActionUseCase(proposalRepo, deps, cfg.SimulatedLatency),
		m,
	)

	previewUC := builder.NewGetPreviewUseCase(handoffStore)
	builderHandler := handler.NewBuilderHandler(handler.BuilderUseCases{
		Start:          builder.NewStartSessionUseCase(sessionRepo, clock),
		Get:            builder.NewGetSessionUseCase(sessionRepo),
		Discard:        builder.NewDiscardSessionUseCase(sessionRepo),
		Toggle:         builder.NewToggleServiceUseCase(sessionRepo, catalogStore, clock),
		Customize:      builder.NewCustomizeServiceUseCase(sessionRepo, clock),
		Customizations: builder.NewSetCustomizationsUseCase(sessionRepo, clock),
		Navigate:       builder.NewNavigateUseCase(sessionRepo, clock),
		Generate:       builder.NewGenerateUseCase(sessionRepo, handoffStore, notificationService, cfg.HandoffTTL, clock),
		Preview:        previewUC,
		Save:           builder.NewSaveAsProposalUseCase(handoffStore, proposalRepo, notificationService, cache, clock),
	})

	dashboardHandler := handler.NewDashboardHandler(
		dashboard.NewGetOverviewUseCase(proposalRepo, cache, cfg.DashboardCacheTTL),
		dashboard.NewGetAnalyticsUseCase(proposalRepo, cache, cfg.DashboardCacheTTL),
		dashboard.NewSearchUseCase(proposalRepo, clientRepo),
	)

	clientHandler := handler.NewClientHandler(
		client.NewListClientsUseCase(clientRepo),
		client.NewGetClientUseCase(clientRepo),
		client.NewCreateClientUseCase(clientRepo),
	)

	static := spa.New(cfg.StaticDir)
	if !static.Available() {
		log.WithField("static_dir", cfg.StaticDir).Warn("app: index.html не найден, фронтенд отдаваться не будет")
	}

	engine := router.SetupRouter(cfg, router.Handlers{
		Proposal:       proposalHandler,
		Builder:        builderHandler,
		Preview:        handler.NewPreviewHandler(previewUC, renderer),
		Dashboard:      dashboardHandler,
		Client:         clientHandler,
		Catalog:        handler.NewCatalogHandler(catalogStore),
		Notification:   handler.NewNotificationHandler(notificationService),
		Health:         handler.NewHealthHandler(catalogStore, proposalRepo, hub),
		WS:             handler.NewWSHandler(hub, cfg.AllowedOrigins),
		SPA:            static,
		Metrics:        m.Handler(),
		MetricsObserve: m,
	})

	return &App{cfg: cfg, Engine: engine, Hub: hub, Catalog: catalogStore, Metrics: m}, nil
}

// Run обслуживает HTTP до отмены ctx и затем корректно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.cfg.HTTPPort,
		Handler:           a.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo("http-shutdown", func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Get().WithError(err).Error("app: ошибка остановки http сервера")
		}
	})

	logger.Get().WithField("port", a.cfg.HTTPPort).Info("app: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("app: сервер завершился с ошибкой: %w", err)
	}
	logger.Get().Info("app: HTTP сервер остановлен")
	return nil
}

// ServiceCount считает услуги во всех категориях.
func ServiceCount(categories []entity.ServiceCategory) int {
	n := 0
	for _, c := range categories {
		n += len(c.Services)
	}
	return n
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/config"
	"github.com/ignatzorin/proposal-desk/internal/http/middleware"
	"github.com/ignatzorin/proposal-desk/internal/http/spa"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/handler"
)

// Handlers собирает обработчики для роутера.
type Handlers struct {
	Proposal     *handler.ProposalHandler
	Builder      *handler.BuilderHandler
	Preview      *handler.PreviewHandler
	Dashboard    *handler.DashboardHandler
	Client       *handler.ClientHandler
	Catalog      *handler.CatalogHandler
	Notification *handler.NotificationHandler
	Health       *handler.HealthHandler
	WS           *handler.WSHandler
	SPA          *spa.Handler
	// Metrics может быть nil, тогда /metrics не регистрируется.
	Metrics        http.Handler
	MetricsObserve middleware.RequestObserver
}

func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	if h.MetricsObserve != nil {
		r.Use(middleware.Metrics(h.MetricsObserve))
	}
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// Печатная версия конструктора рендерится на сервере.
	r.GET("/proposals/preview/:id", h.Preview.Page)

	api := r.Group("/api")
	writeLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	api.GET("/ws", h.WS.Handle)

	api.GET("/dashboard", h.Dashboard.Overview)
	api.GET("/analytics", h.Dashboard.Analytics)
	api.GET("/search", h.Dashboard.Search)

	proposals := api.Group("/proposals")
	{
		proposals.GET("", h.Proposal.ListProposals)
		proposals.GET("/:id", middleware.UUIDValidator("id"), h.Proposal.GetProposal)
		proposals.POST("", writeLimit, h.Proposal.CreateProposal)
		proposals.POST("/bulk", writeLimit, h.Proposal.BulkAction)
		proposals.PATCH("/:id/status", writeLimit, middleware.UUIDValidator("id"), h.Proposal.UpdateProposalStatus)
		proposals.DELETE("/:id", writeLimit, middleware.UUIDValidator("id"), h.Proposal.DeleteProposal)
	}

	builder := api.Group("/builder")
	{
		builder.POST("/sessions", writeLimit, h.Builder.StartSession)
		builder.GET("/sessions/:id", middleware.UUIDValidator("id"), h.Builder.GetSession)
		builder.DELETE("/sessions/:id", middleware.UUIDValidator("id"), h.Builder.DiscardSession)
		builder.POST("/sessions/:id/services", middleware.UUIDValidator("id"), h.Builder.ToggleService)
		builder.PATCH("/sessions/:id/services/:serviceId", middleware.UUIDValidator("id"), h.Builder.CustomizeService)
		builder.PUT("/sessions/:id/customizations", middleware.UUIDValidator("id"), h.Builder.SetCustomizations)
		builder.POST("/sessions/:id/navigate", middleware.UUIDValidator("id"), h.Builder.Navigate)
		builder.POST("/sessions/:id/generate", writeLimit, middleware.UUIDValidator("id"), h.Builder.Generate)

		builder.GET("/generated/:id", middleware.UUIDValidator("id"), h.Builder.GetGenerated)
		builder.GET("/generated/:id/markdown", middleware.UUIDValidator("id"), h.Preview.Markdown)
		builder.POST("/generated/:id/save", writeLimit, middleware.UUIDValidator("id"), h.Builder.SaveGenerated)
	}

	clients := api.Group("/clients")
	{
		clients.GET("", h.Client.ListClients)
		clients.GET("/:id", middleware.UUIDValidator("id"), h.Client.GetClient)
		clients.POST("", writeLimit, h.Client.CreateClient)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("/categories", h.Catalog.ListCategories)
		catalog.GET("/categories/:name", h.Catalog.GetCategory)
		catalog.GET("/services", h.Catalog.ListServices)
		catalog.GET("/services/:id", h.Catalog.GetService)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.Notification.ListNotifications)
		notifications.GET("/unread/count", h.Notification.CountUnread)
		notifications.PUT("/read-all", h.Notification.MarkAllAsRead)
		notifications.PUT("/:id/read", middleware.UUIDValidator("id"), h.Notification.MarkAsRead)
		notifications.DELETE("/:id", middleware.UUIDValidator("id"), h.Notification.DeleteNotification)
	}

	r.NoRoute(h.SPA.NoRoute)

	return r
}

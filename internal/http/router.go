package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/auth"
	"github.com/ledgerlab/fintrack/internal/config"
	"github.com/ledgerlab/fintrack/internal/domain/user"
	"github.com/ledgerlab/fintrack/internal/http/handlers"
	"github.com/ledgerlab/fintrack/internal/http/middlewares"
	"github.com/ledgerlab/fintrack/internal/observability"
	"github.com/ledgerlab/fintrack/internal/repo/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(
	log *slog.Logger,
	cfg config.Config,
	store *memory.Store,
	authenticator *auth.Authenticator,
	prom *observability.Prom,
	metrics *prometheus.Registry,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware([]string{"*"}))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))
	r.Use(otelgin.Middleware("fintrack"))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	authmw := middlewares.NewAuthMiddleware(authenticator, prom)

	// wire up handlers

	healthHandler := handlers.NewHealthHandler()
	configHandler := handlers.NewConfigHandler(cfg)
	authHandler := handlers.NewAuthHandler(authenticator, prom)
	usersHandler := handlers.NewUsersHandler(store)
	transactionsHandler := handlers.NewTransactionsHandler(store)
	adminHandler := handlers.NewAdminHandler(store, store)

	api := r.Group("/api")

	api.GET("/health", healthHandler.Health)
	api.GET("/config", configHandler.Config)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authmw.RequireAuth(), authHandler.Logout)
	api.GET("/auth/me", authmw.RequireAuth(), authHandler.Me)

	api.POST("/users", usersHandler.CreateUser)
	api.GET("/users/:id", usersHandler.GetUserByID)
	api.PUT("/users/:id", usersHandler.UpdateUser)
	api.DELETE("/users/:id", usersHandler.DeleteUser)

	api.POST("/transactions", transactionsHandler.CreateTransaction)
	api.GET("/transactions/:userId", authmw.RequireAuth(), transactionsHandler.ListByUser)
	api.PUT("/transactions/:id", transactionsHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionsHandler.DeleteTransaction)

	admin := api.Group("/admin", authmw.RequireAuth(), authmw.RequireAccountType(user.AccountPremium))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/transactions", adminHandler.ListTransactions)

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})))
	}

	return r
}

package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "moap_dashboard/docs"
	"moap_dashboard/internal/adapter/http/handlers"
	"moap_dashboard/internal/bootstrap"
	"moap_dashboard/internal/config"
	"moap_dashboard/internal/infrastructure/logger"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the engine with every route of the dashboard API.
func NewRouter(app *bootstrap.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, app.Config)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	getRoutes(router, app)
	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, app *bootstrap.App) error {
	log := logger.For("http.server")
	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           NewRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func getRoutes(router *gin.Engine, app *bootstrap.App) {
	authHandler := handlers.NewAuthHandler(app.Auth)
	dashboardHandler := handlers.NewDashboardHandler(app.Dashboard)
	materialHandler := handlers.NewMaterialHandler(app.Materials, app.PriceSync)
	budgetHandler := handlers.NewBudgetHandler(app.Budgets)
	obraHandler := handlers.NewObraHandler(app.Obras)
	visitaHandler := handlers.NewVisitaHandler(app.Visitas)
	concursoHandler := handlers.NewConcursoHandler(app.Concursos)
	userHandler := handlers.NewUserHandler(app.Users)
	messageHandler := handlers.NewMessageHandler(app.Messages)
	notificationHandler := handlers.NewNotificationHandler(app.Notifications)
	invitationHandler := handlers.NewInvitationHandler(app.Invitations)
	snapshotHandler := handlers.NewSnapshotHandler(app.Snapshot)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas do dashboard, exigem sessão
	dashboard := v1.Group("", handlers.RequireSession(app.Auth))
	dashboard.GET(PathDashboard, dashboardHandler.Summary)
	addCatalogRoutes(dashboard, materialHandler, userHandler)
	addProjectRoutes(dashboard, obraHandler, budgetHandler, visitaHandler)
	addCollaborationRoutes(dashboard, concursoHandler, messageHandler, notificationHandler, invitationHandler)
	addAdminRoutes(dashboard, snapshotHandler)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	log := logger.For("http")
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func requestLogger() gin.HandlerFunc {
	log := logger.For("http.access")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}

package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openquorum/ballot-service/internal/handlers"
	"github.com/openquorum/ballot-service/internal/routes"
)

type App struct {
	log    *slog.Logger
	engine *gin.Engine
	server *http.Server
	port   int
}

func NewApp(
	log *slog.Logger,
	port int,
	ballotHandler *handlers.BallotHandler,
	notificationHandler *handlers.NotificationHandler,
	cronHandler *handlers.CronHandler,
	authMiddleware gin.HandlerFunc,
) *App {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cron-Secret"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		private := api.Group("", authMiddleware)
		routes.RegisterPrivateRoutes(private, ballotHandler, notificationHandler)

		routes.RegisterCronRoutes(api, cronHandler)
	}

	// Healthcheck
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	addr := fmt.Sprintf(":%d", port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return &App{
		log:    log,
		engine: r,
		server: httpServer,
		port:   port,
	}
}

func (a *App) Run() error {
	a.log.Info("HTTP server is running", slog.String("addr", a.server.Addr))
	return a.server.ListenAndServe()
}

func (a *App) Stop(ctx context.Context) error {
	a.log.Info("HTTP server is stopping")
	return a.server.Shutdown(ctx)
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

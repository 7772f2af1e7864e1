package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/config"
	"github.com/tom-mcmillan/nwsl-api/internal/features/api_keys"
	"github.com/tom-mcmillan/nwsl-api/internal/features/events"
	"github.com/tom-mcmillan/nwsl-api/internal/features/matches"
	"github.com/tom-mcmillan/nwsl-api/internal/features/players"
	"github.com/tom-mcmillan/nwsl-api/internal/features/stats"
	system_healthcheck "github.com/tom-mcmillan/nwsl-api/internal/features/system/healthcheck"
	"github.com/tom-mcmillan/nwsl-api/internal/features/teams"
	"github.com/tom-mcmillan/nwsl-api/internal/features/venues"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	env_utils "github.com/tom-mcmillan/nwsl-api/internal/util/env"
	"github.com/tom-mcmillan/nwsl-api/internal/util/logger"
	_ "github.com/tom-mcmillan/nwsl-api/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title NWSL Statistics API
// @version 1.0
// @description Read-only National Women's Soccer League statistics behind API key authorization
// @host localhost:8000
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	log := logger.GetLogger()

	storage.RunMigrations()

	if err := api_keys.GetApiKeyService().EnsureDemoKey(context.Background()); err != nil {
		log.Error("Failed to ensure demo API key", "error", err)
		os.Exit(1)
	}

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	// Add GZIP compression middleware
	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	ginApp.Use(requestTimeout())

	enableCors(ginApp)
	setUpRoutes(ginApp)
	runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":" + config.GetEnv().Port,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	api_keys.GetApiKeyBackgroundService().Stop()

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	// Mount Swagger UI
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes (key registration and the system surface)
	root := r.Group("")
	system_healthcheck.GetHealthcheckController().RegisterRoutes(root)
	api_keys.GetApiKeyController().RegisterRoutes(root)

	// Every data route sits behind key authorization
	v1 := r.Group("/api/v1")
	v1.Use(api_keys.RequireApiKey(api_keys.GetApiKeyService()))

	teams.GetTeamController().RegisterRoutes(v1)
	players.GetPlayerController().RegisterRoutes(v1)
	matches.GetMatchController().RegisterRoutes(v1)
	events.GetEventController().RegisterRoutes(v1)
	venues.GetVenueController().RegisterRoutes(v1)
	stats.GetStatsController().RegisterRoutes(v1)
}

// requestTimeout bounds every request context by the store timeout so
// a stuck pool cannot hold handlers forever.
func requestTimeout() gin.HandlerFunc {
	timeout := storage.Timeout()

	return func(ctx *gin.Context) {
		requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), timeout)
		defer cancel()

		ctx.Request = ctx.Request.WithContext(requestCtx)
		ctx.Next()
	}
}

func runBackgroundTasks(log *slog.Logger) {
	log.Info("Preparing to run background tasks...")

	api_keys.GetApiKeyBackgroundService().StartWorkers()

	log.Info("Background tasks started successfully")
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/server/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"X-API-Key",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
			},
			AllowCredentials: true,
		}))
		return
	}

	ginApp.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv().AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Accept",
			"X-API-Key",
		},
		AllowCredentials: true,
	}))
}

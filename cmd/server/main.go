package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valuation-service/internal/config"
	"valuation-service/internal/domain"
	"valuation-service/internal/handler"
	"valuation-service/internal/middleware"
	"valuation-service/internal/registry"
	"valuation-service/internal/regressor"
	"valuation-service/internal/renderer"
	"valuation-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	if _, err := os.Stat(cfg.Models.Dir); err != nil {
		log.Warnf("model directory %s not reachable: %v", cfg.Models.Dir, err)
	}

	// Artifact loading: uncached by default so artifacts can be hot-swapped
	// on disk; the cache trades that freshness for latency.
	var loader domain.ArtifactLoader = regressor.NewONNXLoader(cfg.Models)
	if cfg.Cache.Enabled {
		loader = regressor.NewCachedLoader(loader, cfg.Cache.TTL)
		log.Infof("model artifact cache enabled (ttl %s)", cfg.Cache.TTL)
	}

	// Render backend (optional - based on config)
	var docRenderer domain.DocumentRenderer
	if cfg.Renderer.Enabled {
		docRenderer = renderer.NewHTTPRenderer(cfg.Renderer.URL, cfg.Renderer.Timeout)
		log.Infof("render backend enabled at %s", cfg.Renderer.URL)
	} else {
		docRenderer = renderer.NewPlaceholder()
		log.Info("render backend disabled, serving placeholder documents")
	}

	modelRegistry := registry.NewFilesystem(cfg.Models)
	predictUC := usecase.NewPredictUseCase(modelRegistry, loader)
	documentUC := usecase.NewDocumentUseCase(docRenderer, nil)

	h := handler.New(predictUC, documentUC)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.CORS(cfg.CORS.Origins), gin.Recovery())

	h.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🏡 Real Estate Prediction API is running!")
	})

	router.GET("/healthz", func(c *gin.Context) {
		if _, err := os.Stat(cfg.Models.Dir); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

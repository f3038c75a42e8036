// File: pawfect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawfect/config"
	"pawfect/handlers"
	"pawfect/routes"
	"pawfect/services/search"
	"pawfect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	catalogue, err := search.NewCatalogue(search.DefaultListings())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build catalogue: %v", err)
	}
	searchService := search.NewDefaultSearchService(catalogue, logger.Named("search"))

	if config.AppConfig.SearchCacheEnabled {
		if err := utils.InitCache(); err != nil {
			// The cache only memoizes results; run without it.
			logger.Warn("main: search cache disabled", zap.Error(err))
		} else {
			searchService.Cache = search.NewRedisResultCache(utils.GetCacheClient())
			searchService.CacheTTL = config.AppConfig.SearchCacheTTL
			searchService.CacheTimeout = config.AppConfig.SearchCacheTimeout
			utils.StartHealthMonitor(rootCtx, utils.GetCacheClient(), 60*time.Second)
			defer utils.GetCacheClient().Close()
		}
	}

	handlerBundle := handlers.NewHandlerBundle(handlers.NewSearchHandler(searchService))

	router, err := routes.NewRouter(config.AppConfig, logger, handlerBundle)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build router: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

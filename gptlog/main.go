package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gptlog/gptlog/config"
	"gptlog/gptlog/controllers"
	"gptlog/gptlog/middlewares"
	"gptlog/gptlog/routes"
	"gptlog/gptlog/sources/psql"
	"gptlog/gptlog/sources/psql/dao"
	"gptlog/gptlog/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A missing or unreachable database is not fatal: /health stays up and
	// writes fail with a storage error until the configuration is fixed.
	var interactionDAO *dao.InteractionDAO
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.AppLogger.Warn("running without database, writes will fail", zap.Error(err))
		interactionDAO = dao.NewInteractionDAO(nil)
	} else {
		defer db.Close()
		interactionDAO = dao.NewInteractionDAO(db.DB)
		logging.AppLogger.Info("database table 'interactions' checked/created")
	}
	if cfg.APIKey == "" {
		logging.AppLogger.Warn("API_KEY not set, /log_interaction requests will be rejected")
	}

	interactionCtrl := controllers.NewInteractionController(interactionDAO)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/log_interaction", routes.InteractionRoutes(interactionCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}

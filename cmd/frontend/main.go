package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/config"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/middleware"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/router"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/server"
)

// The frontend container only needs probes; the UI bundle is served elsewhere.
func main() {
	cfg := config.LoadFrontend()

	observability.InitLogger(cfg.ServiceName, cfg.LogLevel)
	log := observability.Log
	defer log.Sync()

	srv := server.New(cfg.HTTPAddr, router.NewHealthRouter(middleware.NewFaultReporter(cfg.ServiceName, nil)), log)
	if err := srv.Listen(); err != nil {
		log.Fatal("failed to bind listener", zap.Error(err))
	}

	go func() {
		if err := srv.Serve(); err != nil {
			log.Fatal("health server error", zap.Error(err))
		}
	}()
	log.Info("health server running", zap.String("addr", srv.Addr()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("health server shutdown failed", zap.Error(err))
	}
	log.Info("health server stopped")
}

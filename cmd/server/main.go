package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/config"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/handler"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/metrics"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/middleware"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/observability"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/router"
	"github.com/SARVESHVARADKAR123/ecomm-capstone/internal/server"
)

func main() {
	cfg := config.Load()

	// Observability
	observability.InitLogger(cfg.ServiceName, cfg.LogLevel)
	log := observability.Log
	defer log.Sync()

	instanceID := getOrGenerateInstanceID(cfg.InstanceID)

	var tp *sdktrace.TracerProvider
	if cfg.TracingEnabled {
		var err error
		tp, err = observability.InitTracer(cfg.ServiceName, instanceID, cfg.JaegerURL)
		if err != nil {
			log.Fatal("failed to initialize tracer", zap.Error(err))
		}
	}

	ctx, cancel := setupSignalHandler(log)
	defer cancel()

	emitter := initEmitter(ctx, cfg, log)
	faults := middleware.NewFaultReporter(cfg.ServiceName, emitter)
	h := handler.New(cfg.InventoryProducts, emitter, faults)

	r := router.NewRouter(h, faults, router.Options{
		ServiceName:       cfg.ServiceName,
		TraceSegment:      cfg.TraceSegment,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	})

	srv := server.New(cfg.HTTPAddr, r, log)
	if err := srv.Listen(); err != nil {
		log.Fatal("failed to bind listener", zap.Error(err))
	}
	obsSrv := initObservabilityServer(cfg, log)

	startServers(srv, obsSrv, log)
	log.Info("backend running",
		zap.String("addr", srv.Addr()),
		zap.String("instance_id", instanceID),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
		zap.Bool("tracing_enabled", cfg.TracingEnabled),
	)

	<-ctx.Done()
	performGracefulShutdown(cfg, srv, obsSrv, emitter, tp, log)
}

func setupSignalHandler(log *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received signal, initiating shutdown", zap.String("signal", sig.String()))
		cancel()
	}()
	return ctx, cancel
}

func getOrGenerateInstanceID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func initEmitter(ctx context.Context, cfg *config.Config, log *zap.Logger) *metrics.Emitter {
	if !cfg.MetricsEnabled {
		return nil
	}

	var sink metrics.Sink
	switch cfg.MetricsSink {
	case "cloudwatch":
		client, err := metrics.NewCloudWatchClient(ctx, cfg.AWSRegion)
		if err != nil {
			log.Fatal("failed to create cloudwatch client", zap.Error(err))
		}
		sink = metrics.NewCloudWatchSink(client)
	case "kafka":
		sink = metrics.NewKafkaSink(cfg.KafkaBrokers, cfg.MetricsTopic)
	case "prometheus":
		sink = metrics.NewPrometheusSink(prometheus.DefaultRegisterer)
	case "log":
		sink = metrics.NewLogSink(log.Named("metrics"))
	default:
		log.Fatal("unknown metrics sink", zap.String("sink", cfg.MetricsSink))
	}

	log.Info("metrics emission enabled",
		zap.String("sink", cfg.MetricsSink),
		zap.String("namespace", cfg.MetricsNamespace),
	)

	return metrics.NewEmitter(sink,
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithTimeout(cfg.MetricsTimeout),
		metrics.WithErrorFunc(metrics.LogAndCount(log, cfg.ServiceName, cfg.MetricsSink)),
	)
}

func initObservabilityServer(cfg *config.Config, log *zap.Logger) *server.Server {
	if cfg.ObsHTTPAddr == "" {
		return nil
	}
	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.Handler())

	obs := server.New(cfg.ObsHTTPAddr, mux, log.Named("obs"))
	if err := obs.Listen(); err != nil {
		log.Fatal("failed to bind observability listener", zap.Error(err))
	}
	return obs
}

func startServers(srv, obsSrv *server.Server, log *zap.Logger) {
	if obsSrv != nil {
		go func() {
			if err := obsSrv.Serve(); err != nil {
				log.Error("observability server error", zap.Error(err))
			}
		}()
	}
	go func() {
		if err := srv.Serve(); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()
}

func performGracefulShutdown(cfg *config.Config, srv, obsSrv *server.Server, emitter *metrics.Emitter, tp *sdktrace.TracerProvider, log *zap.Logger) {
	log.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}
	if obsSrv != nil {
		if err := obsSrv.Shutdown(ctx); err != nil {
			log.Error("error during observability server shutdown", zap.Error(err))
		}
	}
	if err := emitter.Close(); err != nil {
		log.Error("error closing metrics sink", zap.Error(err))
	}
	if tp != nil {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer provider", zap.Error(err))
		}
	}
	log.Info("shutdown complete, exiting")
}

// riftd is the broker daemon: it loads configuration, starts the broker,
// and serves PubSubService, TopicService, and SubscriptionService over
// gRPC until it receives a shutdown signal.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/api/riftpb"
	"github.com/csaide/riftdb/internal/broker"
	"github.com/csaide/riftdb/internal/config"
	"github.com/csaide/riftdb/internal/grpcapi"
	"github.com/csaide/riftdb/internal/metrics"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug-level logging")
	flag.Parse()

	bootLogger := newLogger("info")
	cfg, err := config.Load()
	if err != nil {
		bootLogger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Log.Level = "debug"
	}
	logger := newLogger(cfg.Log.Level)

	lis, err := net.Listen("tcp", cfg.Server.ListenAddr)
	if err != nil {
		logger.Error("cannot listen", "addr", cfg.Server.ListenAddr, "error", err)
		os.Exit(1)
	}

	b, err := broker.New(
		broker.WithLogger(logger),
		broker.WithHooks(metrics.Hooks{}),
		broker.WithLeaseTTL(cfg.LeaseTTL()),
		broker.WithExpiryTick(cfg.ExpiryTick()),
	)
	if err != nil {
		logger.Error("failed to construct broker", "error", err)
		os.Exit(1)
	}

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcapi.UnaryRequestIDInterceptor(logger)),
		grpc.ChainStreamInterceptor(grpcapi.StreamRequestIDInterceptor(logger)),
	)
	riftpb.RegisterPubSubServiceServer(grpcServer, grpcapi.NewPubSubServer(b, logger))
	riftpb.RegisterTopicServiceServer(grpcServer, grpcapi.NewTopicServer(b, logger))
	riftpb.RegisterSubscriptionServiceServer(grpcServer, grpcapi.NewSubscriptionServer(b, logger))
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		logger.Info("metrics server started", "addr", cfg.Metrics.ListenAddr)
	}

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server failed", "error", status.Errorf(codes.Internal, "%v", err))
		}
	}()
	logger.Info("riftd started", "addr", cfg.Server.ListenAddr)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutS)*time.Second)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown incomplete", "error", err)
		}
	}

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	if err := b.Close(); err != nil {
		logger.Warn("broker shutdown incomplete", "error", err)
	}

	logger.Info("all done, exiting")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"paybridge/cmd/paybridge/config"
	"paybridge/internal/paybridge"
	"paybridge/internal/paybridge/payu"
	"paybridge/internal/paybridge/service"
	"paybridge/internal/paybridge/store"
	"paybridge/pkg/logging"
	"paybridge/pkg/tokencache"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewZapLogger(zapcore.DebugLevel)
	if err != nil {
		log.Fatal(err)
	}

	authClient := payu.NewAuthClient(cfg.PayUAuth, logger)
	var authenticator service.Authenticator = authClient
	if cfg.TokenCacheTTL > 0 {
		authenticator = tokencache.New(authClient, cfg.TokenCacheTTL)
	}
	orderClient := payu.NewOrderClient(cfg.PayUOrders, logger)
	storeClient := store.New(cfg.Store, logger)
	verifier := payu.NewSignatureVerifier(cfg.PayUSecondKey)

	orchestrator := service.NewOrchestrator(cfg.Orchestrator, authenticator, orderClient, logger)
	reconciler := service.NewReconciler(storeClient, logger)

	server := paybridge.NewServer(cfg.Server, orchestrator, reconciler, verifier, logger)

	rootCtx, cancelCtx := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGABRT,
	)
	defer cancelCtx()

	if err := run(rootCtx, cfg, server, logger); err != nil {
		logger.ErrorCtx(rootCtx, "Server shutdown with error", zap.Error(err))
	} else {
		logger.InfoCtx(rootCtx, "Server shutdown gracefully")
	}
}

func run(rootCtx context.Context, cfg *config.Config, server *paybridge.Server, logger *logging.ZapLogger) error {
	g, ctx := errgroup.WithContext(rootCtx)

	context.AfterFunc(ctx, func() {
		ctx, cancelCtx := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelCtx()

		<-ctx.Done()
		log.Fatal("failed to gracefully shutdown the server")
	})

	g.Go(func() error {
		logger.InfoCtx(ctx, "Starting server", zap.String("address", cfg.Server.ServerAddress))
		if err := server.Run(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer logger.InfoCtx(ctx, "Shutting down server")
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("goroutine error occured: %w", err)
	}

	return nil
}

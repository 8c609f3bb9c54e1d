package paybridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paybridge/internal/paybridge/handlers"
	"paybridge/internal/paybridge/middleware"
	"paybridge/pkg/logging"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
}

type Server struct {
	logger     *logging.ZapLogger
	httpServer *http.Server
	cfg        Config
}

func NewServer(
	cfg Config,
	submissionService handlers.OrderSubmissionService,
	notificationService handlers.NotificationService,
	verifier handlers.SignatureVerifier,
	logger *logging.ZapLogger,
) *Server {
	srv := &http.Server{
		Addr: cfg.ServerAddress,
		Handler: createMux(
			submissionService,
			notificationService,
			verifier,
			logger,
		),
	}

	res := &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
	}

	return res
}

func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server ListenAndServe failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func createMux(
	submissionService handlers.OrderSubmissionService,
	notificationService handlers.NotificationService,
	verifier handlers.SignatureVerifier,
	logger *logging.ZapLogger,
) *chi.Mux {

	submissionHandler := handlers.NewPaymentSubmissionHandler(submissionService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, verifier, logger)

	loggerContext := middleware.NewLoggerContext()
	panicRecover := middleware.NewPanicRecover(logger)

	router := chi.NewRouter()
	router.Use(loggerContext.CreateHandler)
	router.Use(panicRecover.CreateHandler)

	router.Post("/payu", submissionHandler.ServeHTTP)
	router.Post("/payu/notify", notificationHandler.ServeHTTP)

	return router
}

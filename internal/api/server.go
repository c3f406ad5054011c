package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/api/handler"
	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/sales-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	collector feedback.Collector,
	authenticator authenticating.Authenticator,
	retention handler.RetentionJob,
) (*Server, error) {
	if analyzer == nil {
		return nil, analyzing.ErrDatasetNotLoaded
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer, collector, authenticator, retention),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	analyzer analyzing.Analyzer,
	collector feedback.Collector,
	authenticator authenticating.Authenticator,
	retention handler.RetentionJob,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(analyzer)...),
		router.WithRoutes(handler.Analytics(analyzer)...),
		router.WithRoutes(handler.Feedback(collector, authenticator)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.CronJobs(retention, authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

// OnShutdown registra funções de limpeza executadas após o desligamento do HTTP
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	logrus.Info("Executando operações de limpeza")
	for _, fn := range s.onShutdown {
		fn()
	}

	return nil
}

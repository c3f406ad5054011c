package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/infrastructure/dataset"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/api"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/feedback"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O dataset é carregado uma única vez, antes do servidor subir, e só é lido depois disso
	records, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}
	salesRepo := repository.NewSalesRepository(records)

	feedbackRepo, closeFeedbackRepo := feedbackRepository(ctx, cfg)

	analyzer := analyzing.NewService(salesRepo, cfg.Dataset.TableRowLimit)
	collector := feedback.NewService(feedbackRepo)
	authenticator := authenticating.NewService(cfg.Auth)

	retentionService := scheduler.NewFeedbackRetentionService(feedbackRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de feedback")
	} else {
		logrus.Info("Agendador de retenção de feedback iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzer, collector, authenticator, retentionService)
	if err != nil {
		logrus.Fatal(err)
	}
	server.OnShutdown(closeFeedbackRepo)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// feedbackRepository escolhe o armazenamento de feedback conforme FEEDBACK_STORE
func feedbackRepository(ctx context.Context, cfg *config.Config) (repository.FeedbackRepository, func()) {
	switch cfg.Feedback.Store {
	case config.FeedbackStorePostgres:
		conn := pgconn(ctx, cfg.Database)

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			return repository.EnsureFeedbackSchema(ctx, tx)
		})
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar a tabela de feedback")
		}

		return repository.NewFeedbackRepository(conn), func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		}
	case config.FeedbackStoreMemory, "":
		logrus.Info("Feedback armazenado em memória")
		return repository.NewMemoryFeedbackRepository(), func() {}
	default:
		logrus.Fatalf("FEEDBACK_STORE inválido: %s", cfg.Feedback.Store)
		return nil, nil
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// Package scheduler contém os serviços de agendamento executados em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/config"
)

const DefaultRetentionDays = 90

type FeedbackRetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// FeedbackRetentionService remove periodicamente feedbacks mais antigos que Days
type FeedbackRetentionService struct {
	scheduler            *gocron.Scheduler
	feedbackRepo         repository.FeedbackRepository
	config               FeedbackRetentionConfig
	purgeRunning         bool
	purgeMutex           sync.Mutex
	lastPurgeStartedAt   time.Time
	lastPurgeCompletedAt time.Time
	lastPurgeDeleted     int64
	lastPurgeError       string
}

func NewFeedbackRetentionService(feedbackRepo repository.FeedbackRepository, cfg *config.Config) *FeedbackRetentionService {
	retentionConfig := FeedbackRetentionConfig{
		CronSchedule: cfg.FeedbackRetention.CronSchedule,
		Days:         cfg.FeedbackRetention.Days,
		Enabled:      cfg.FeedbackRetention.Enabled,
	}
	if retentionConfig.Days <= 0 {
		retentionConfig.Days = DefaultRetentionDays
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.Days,
	}).Info("scheduler: configuração de retenção de feedback carregada")

	return &FeedbackRetentionService{
		scheduler:    gocron.NewScheduler(time.Local),
		feedbackRepo: feedbackRepo,
		config:       retentionConfig,
	}
}

func (s *FeedbackRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: retenção de feedback desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando cron de retenção de feedback")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.PurgeOldFeedback(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: erro na retenção de feedback")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de feedback: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando cron de retenção de feedback")
		s.scheduler.Stop()
	}()

	return nil
}

// PurgeOldFeedback apaga os feedbacks fora da janela de retenção. Se uma
// execução já estiver em andamento, retorna zero sem erro.
func (s *FeedbackRetentionService) PurgeOldFeedback(ctx context.Context) (int64, error) {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Warn("scheduler: retenção de feedback já está em execução")
		return 0, nil
	}
	s.purgeRunning = true
	s.lastPurgeStartedAt = time.Now()
	s.purgeMutex.Unlock()

	deleted, err := s.feedbackRepo.DeleteOlderThan(ctx, s.config.Days)

	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()
	s.purgeRunning = false
	s.lastPurgeCompletedAt = time.Now()
	s.lastPurgeDeleted = deleted
	s.lastPurgeError = ""
	if err != nil {
		s.lastPurgeError = err.Error()
		return 0, fmt.Errorf("erro ao remover feedbacks antigos: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.Days,
	}).Info("scheduler: retenção de feedback concluída")

	return deleted, nil
}

// TriggerManualPurge dispara a retenção fora do agendamento, em background
func (s *FeedbackRetentionService) TriggerManualPurge(ctx context.Context) {
	go func() {
		if _, err := s.PurgeOldFeedback(context.WithoutCancel(ctx)); err != nil {
			logrus.WithError(err).Error("scheduler: erro na retenção manual de feedback")
		}
	}()
}

func (s *FeedbackRetentionService) GetStatus() map[string]any {
	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	status := map[string]any{
		"enabled":        s.config.Enabled,
		"cron":           s.config.CronSchedule,
		"retention_days": s.config.Days,
		"running":        s.purgeRunning,
		"last_deleted":   s.lastPurgeDeleted,
	}

	if !s.lastPurgeStartedAt.IsZero() {
		status["last_started_at"] = s.lastPurgeStartedAt.Format(time.RFC3339)
	}
	if !s.lastPurgeCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastPurgeCompletedAt.Format(time.RFC3339)
	}
	if s.lastPurgeError != "" {
		status["last_error"] = s.lastPurgeError
	}

	return status
}

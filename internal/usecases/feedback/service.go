// Package feedback recebe as mensagens livres do formulário do dashboard.
// Não há validação e nada aqui afeta as métricas de vendas.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/log"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const DefaultListLimit = 100

var _ Collector = (*Service)(nil)

var (
	ErrGenerateID = errors.New("error generating feedback ID")
	ErrSave       = errors.New("error saving feedback")
	ErrList       = errors.New("error listing feedback")
)

type Collector interface {
	Submit(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context, limit int) ([]*domain.Feedback, error)
}

type Service struct {
	repository repository.FeedbackRepository
	generateID func() (string, error)
	now        func() time.Time
}

func NewService(repo repository.FeedbackRepository) *Service {
	return &Service{
		repository: repo,
		generateID: utils.GenerateID,
		now:        time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateID, err)
	}

	feedback.ID = id
	feedback.CreatedAt = s.now().UTC()

	log.ForContext(ctx).WithFields(log.Fields{
		"feedback_id":      feedback.ID,
		"feedback_name":    feedback.Name,
		"feedback_email":   feedback.Email,
		"feedback_purpose": feedback.Purpose,
		"feedback_message": feedback.Message,
	}).Info("feedback: mensagem recebida")

	if err := s.repository.Save(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSave, err)
	}

	return &feedback, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	feedbacks, err := s.repository.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrList, err)
	}

	return feedbacks, nil
}

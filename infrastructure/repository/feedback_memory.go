package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// memoryFeedbackRepository guarda feedbacks em memória; usado quando não há banco configurado
type memoryFeedbackRepository struct {
	mu        sync.RWMutex
	feedbacks []*domain.Feedback
	now       func() time.Time
}

func NewMemoryFeedbackRepository() FeedbackRepository {
	return &memoryFeedbackRepository{now: time.Now}
}

func (r *memoryFeedbackRepository) Save(_ context.Context, feedback *domain.Feedback) error {
	copied := *feedback

	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedbacks = append(r.feedbacks, &copied)

	return nil
}

// List retorna os feedbacks mais recentes primeiro
func (r *memoryFeedbackRepository) List(_ context.Context, limit int) ([]*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Feedback, 0, len(r.feedbacks))
	for _, f := range r.feedbacks {
		copied := *f
		result = append(result, &copied)
	}

	slices.SortStableFunc(result, func(a, b *domain.Feedback) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (r *memoryFeedbackRepository) DeleteOlderThan(_ context.Context, days int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -days)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.feedbacks[:0]
	var deleted int64
	for _, f := range r.feedbacks {
		if f.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	r.feedbacks = kept

	return deleted, nil
}

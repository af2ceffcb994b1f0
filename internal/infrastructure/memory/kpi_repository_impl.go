package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// KPIRepository is the in-memory daily metrics store, keyed by owner + date.
type KPIRepository struct {
	mu      sync.Mutex
	metrics map[string]*entity.KPIMetric
}

var _ repository.KPIRepository = (*KPIRepository)(nil)

func NewKPIRepository() *KPIRepository {
	return &KPIRepository{metrics: make(map[string]*entity.KPIMetric)}
}

func kpiKey(ownerID, date string) string {
	return ownerID + "/" + date
}

func (r *KPIRepository) Upsert(_ context.Context, m *entity.KPIMetric) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := kpiKey(m.UserID, m.Date)
	if existing, ok := r.metrics[key]; ok {
		m.ID = existing.ID
		m.CreatedAt = existing.CreatedAt
	} else {
		m.ID = newID()
		m.CreatedAt = time.Now().UTC()
	}
	cp := *m
	r.metrics[key] = &cp
	return nil
}

func (r *KPIRepository) FindByOwner(_ context.Context, ownerID, dateFrom, dateTo string) ([]*entity.KPIMetric, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metrics := make([]*entity.KPIMetric, 0)
	for _, m := range r.metrics {
		if m.UserID != ownerID {
			continue
		}
		if dateFrom != "" && m.Date < dateFrom {
			continue
		}
		if dateTo != "" && m.Date > dateTo {
			continue
		}
		cp := *m
		metrics = append(metrics, &cp)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Date < metrics[j].Date
	})
	return metrics, nil
}

func (r *KPIRepository) FindByDate(_ context.Context, ownerID, date string) (*entity.KPIMetric, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.metrics[kpiKey(ownerID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *KPIRepository) SumMeetingsByDate(ctx context.Context, ownerID, dateFrom, dateTo string) (map[string]int, error) {
	metrics, err := r.FindByOwner(ctx, ownerID, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	sums := make(map[string]int, len(metrics))
	for _, m := range metrics {
		sums[m.Date] += m.MeetingsScheduled + m.MeetingsCompleted
	}
	return sums, nil
}

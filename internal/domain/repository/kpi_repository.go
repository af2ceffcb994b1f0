package repository

import (
	"context"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

// KPIRepository stores daily per-owner activity counters, keyed by
// (owner, date). Upsert replaces the counters for the metric's date.
type KPIRepository interface {
	Upsert(ctx context.Context, m *entity.KPIMetric) error
	FindByOwner(ctx context.Context, ownerID, dateFrom, dateTo string) ([]*entity.KPIMetric, error)
	FindByDate(ctx context.Context, ownerID, date string) (*entity.KPIMetric, error)
	// SumMeetingsByDate returns date -> meetings_scheduled+meetings_completed
	// for the inclusive date range.
	SumMeetingsByDate(ctx context.Context, ownerID, dateFrom, dateTo string) (map[string]int, error)
}

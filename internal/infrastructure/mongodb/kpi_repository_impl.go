package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

type kpiDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"user_id"`
	Date              string             `bson:"date"`
	MeetingsScheduled int                `bson:"meetings_scheduled"`
	MeetingsCompleted int                `bson:"meetings_completed"`
	TasksCompleted    int                `bson:"tasks_completed"`
	TasksPending      int                `bson:"tasks_pending"`
	FollowUpsRequired int                `bson:"follow_ups_required"`
	CreatedAt         time.Time          `bson:"created_at"`
}

func (d *kpiDoc) toEntity() *entity.KPIMetric {
	return &entity.KPIMetric{
		ID:                d.ID.Hex(),
		UserID:            d.UserID,
		Date:              d.Date,
		MeetingsScheduled: d.MeetingsScheduled,
		MeetingsCompleted: d.MeetingsCompleted,
		TasksCompleted:    d.TasksCompleted,
		TasksPending:      d.TasksPending,
		FollowUpsRequired: d.FollowUpsRequired,
		CreatedAt:         d.CreatedAt,
	}
}

// KPIRepository is the Mongo-backed daily metrics store.
type KPIRepository struct {
	col *mongo.Collection
}

var _ repository.KPIRepository = (*KPIRepository)(nil)

func NewKPIRepository(db *mongo.Database) *KPIRepository {
	return &KPIRepository{col: db.Collection("kpi_metrics")}
}

func (r *KPIRepository) Upsert(ctx context.Context, m *entity.KPIMetric) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": m.UserID, "date": m.Date},
		bson.M{
			"$set": bson.M{
				"meetings_scheduled":  m.MeetingsScheduled,
				"meetings_completed":  m.MeetingsCompleted,
				"tasks_completed":     m.TasksCompleted,
				"tasks_pending":       m.TasksPending,
				"follow_ups_required": m.FollowUpsRequired,
			},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *KPIRepository) FindByOwner(ctx context.Context, ownerID, dateFrom, dateTo string) ([]*entity.KPIMetric, error) {
	filter := bson.M{"user_id": ownerID}
	if dateFrom != "" || dateTo != "" {
		rng := bson.M{}
		if dateFrom != "" {
			rng["$gte"] = dateFrom
		}
		if dateTo != "" {
			rng["$lte"] = dateTo
		}
		filter["date"] = rng
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	metrics := make([]*entity.KPIMetric, 0)
	for cur.Next(ctx) {
		var doc kpiDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		metrics = append(metrics, doc.toEntity())
	}
	return metrics, cur.Err()
}

func (r *KPIRepository) FindByDate(ctx context.Context, ownerID, date string) (*entity.KPIMetric, error) {
	var doc kpiDoc
	err := r.col.FindOne(ctx, bson.M{"user_id": ownerID, "date": date}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
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

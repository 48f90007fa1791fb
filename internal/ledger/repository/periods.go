package repository

import (
	"context"
	"errors"
	"fmt"

	"mizan/internal/ledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPeriodExists means a closed-period record for that period is already
// present (a concurrent closer won the race).
var ErrPeriodExists = errors.New("period already recorded as closed")

// MongoClosedPeriodRepository 已结账期间数据访问层（MongoDB 实现）
type MongoClosedPeriodRepository struct {
	collection *mongo.Collection
}

// NewMongoClosedPeriodRepository 创建期间 Repository
func NewMongoClosedPeriodRepository(db *mongo.Database) ClosedPeriodRepository {
	return &MongoClosedPeriodRepository{
		collection: db.Collection("closed_periods"),
	}
}

// IsClosed reports whether closing already ran for the period.
func (r *MongoClosedPeriodRepository) IsClosed(ctx context.Context, period string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"period": period})
	if err != nil {
		return false, fmt.Errorf("failed to query closed periods: %w", err)
	}

	return count > 0, nil
}

// MarkClosed records that the period has been closed. The unique index on
// period turns a concurrent double close into ErrPeriodExists.
func (r *MongoClosedPeriodRepository) MarkClosed(ctx context.Context, closed *models.ClosedPeriod) error {
	_, err := r.collection.InsertOne(ctx, closed)
	if mongo.IsDuplicateKeyError(err) {
		return ErrPeriodExists
	}
	if err != nil {
		return fmt.Errorf("failed to record closed period: %w", err)
	}

	return nil
}

// EnsureIndexes 确保索引存在
func (r *MongoClosedPeriodRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "period", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create closed period indexes: %w", err)
	}

	return nil
}

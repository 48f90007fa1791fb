package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mizan/internal/ledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAccountingEntryRepository 会计分录数据访问层（MongoDB 实现）
type MongoAccountingEntryRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountingEntryRepository 创建分录 Repository
func NewMongoAccountingEntryRepository(db *mongo.Database) AccountingEntryRepository {
	return &MongoAccountingEntryRepository{
		collection: db.Collection("accounting_entries"),
	}
}

// Insert appends one entry to the log. Each insert is a single atomic
// document write, so concurrent creators cannot overwrite each other.
func (r *MongoAccountingEntryRepository) Insert(ctx context.Context, entry *models.AccountingEntry) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to create accounting entry: %w", err)
	}

	return nil
}

// ListAll returns every entry, oldest insert first.
func (r *MongoAccountingEntryRepository) ListAll(ctx context.Context) ([]*models.AccountingEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounting entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*models.AccountingEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode accounting entries: %w", err)
	}

	return entries, nil
}

// ListThrough returns entries with date <= asOf, ordered by date.
func (r *MongoAccountingEntryRepository) ListThrough(ctx context.Context, asOf time.Time) ([]*models.AccountingEntry, error) {
	filter := bson.M{
		"date": bson.M{"$lte": asOf},
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounting entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*models.AccountingEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode accounting entries: %w", err)
	}

	return entries, nil
}

// Delete removes the entry with the given hex id and returns the removed
// document so the caller can reverse its balance contribution. Returns
// (nil, nil) when the id is unknown.
func (r *MongoAccountingEntryRepository) Delete(ctx context.Context, id string) (*models.AccountingEntry, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entry ID: %w", err)
	}

	var entry models.AccountingEntry
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete accounting entry: %w", err)
	}

	return &entry, nil
}

// EnsureIndexes 确保索引存在
func (r *MongoAccountingEntryRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// 按日期范围查询（trial balance as-of 过滤）
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create accounting entry indexes: %w", err)
	}

	return nil
}

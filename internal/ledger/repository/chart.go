package repository

import (
	"context"
	"fmt"

	"mizan/internal/ledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChartOfAccountsRepository 会计科目表数据访问层（MongoDB 实现）
type MongoChartOfAccountsRepository struct {
	collection *mongo.Collection
}

// NewMongoChartOfAccountsRepository 创建科目表 Repository
func NewMongoChartOfAccountsRepository(db *mongo.Database) ChartOfAccountsRepository {
	return &MongoChartOfAccountsRepository{
		collection: db.Collection("chart_of_accounts"),
	}
}

// List returns all accounts ordered by code.
func (r *MongoChartOfAccountsRepository) List(ctx context.Context) ([]*models.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart of accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []*models.Account
	if err = cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode chart of accounts: %w", err)
	}

	return accounts, nil
}

// Replace drops whatever the collection holds and writes the given accounts.
// Callers own the decision to overwrite; see ChartService.Initialize.
func (r *MongoChartOfAccountsRepository) Replace(ctx context.Context, accounts []*models.Account) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear chart of accounts: %w", err)
	}

	if len(accounts) == 0 {
		return nil
	}

	docs := make([]interface{}, len(accounts))
	for i, account := range accounts {
		docs[i] = account
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to write chart of accounts: %w", err)
	}

	return nil
}

// EnsureIndexes 确保索引存在
func (r *MongoChartOfAccountsRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create chart of accounts indexes: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"mizan/internal/ledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAccountBalanceRepository 账户余额数据访问层（MongoDB 实现）
type MongoAccountBalanceRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountBalanceRepository 创建余额 Repository
func NewMongoAccountBalanceRepository(db *mongo.Database) AccountBalanceRepository {
	return &MongoAccountBalanceRepository{
		collection: db.Collection("account_balances"),
	}
}

// Apply increments one account's running net by delta with an atomic upsert,
// so concurrent entry writers never lose each other's increments.
func (r *MongoAccountBalanceRepository) Apply(ctx context.Context, accountCode, accountName string, delta float64, txDate time.Time) error {
	set := bson.M{"account_name": accountName}
	if !txDate.IsZero() {
		set["last_transaction_date"] = txDate
	}

	update := bson.M{
		"$inc":         bson.M{"net": delta},
		"$set":         set,
		"$setOnInsert": bson.M{"account_code": accountCode},
	}

	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, bson.M{"account_code": accountCode}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to apply account balance delta: %w", err)
	}

	return nil
}

// List returns all materialized balances ordered by account code.
func (r *MongoAccountBalanceRepository) List(ctx context.Context) ([]*models.AccountBalance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "account_code", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer cursor.Close(ctx)

	var balances []*models.AccountBalance
	if err = cursor.All(ctx, &balances); err != nil {
		return nil, fmt.Errorf("failed to decode account balances: %w", err)
	}

	return balances, nil
}

// EnsureIndexes 确保索引存在
func (r *MongoAccountBalanceRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "account_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create account balance indexes: %w", err)
	}

	return nil
}

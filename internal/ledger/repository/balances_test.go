package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoAccountBalanceRepositoryApply(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := &MongoAccountBalanceRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Apply(context.Background(), "1110", "Cash", 11500, time.Now())
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	})

	mt.Run("update error", func(mt *mtest.T) {
		repo := &MongoAccountBalanceRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Name:    "WriteError",
			Message: "mock update failure",
		}))

		err := repo.Apply(context.Background(), "1110", "Cash", -300, time.Time{})
		if err == nil {
			t.Fatalf("expected error but got nil")
		}
		if !strings.Contains(err.Error(), "failed to apply account balance delta") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMongoAccountBalanceRepositoryList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := &MongoAccountBalanceRepository{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "account_code", Value: "1110"},
			{Key: "account_name", Value: "Cash"},
			{Key: "net", Value: 7000.0},
			{Key: "last_transaction_date", Value: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)},
		})
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		balances, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(balances))
		}
		if balances[0].Net != 7000 || balances[0].AccountCode != "1110" {
			t.Fatalf("unexpected balance decoded: %+v", balances[0])
		}
	})
}

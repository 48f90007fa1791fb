package app

import (
	"context"
	"fmt"
	"time"

	"mizan/internal/config"
	"mizan/internal/ledger/repository"
	"mizan/internal/ledger/service"
	"mizan/internal/logger"
	"mizan/internal/mongo"
)

// App 应用服务容器
// Owns the lifecycle of storage and the ledger services built on top.
type App struct {
	MongoDB *mongo.Client

	Chart        service.ChartService
	Entries      service.EntryService
	TrialBalance service.TrialBalanceService
	Closing      service.ClosingService
	Balances     service.BalanceService
}

// New initializes storage, repositories and services. Any failure leaves
// nothing half-started: the Mongo client is closed before returning.
func New(cfg *config.Config) (*App, error) {
	mongoClient, err := mongo.NewClient(mongo.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDBName,
	})
	if err != nil {
		return nil, fmt.Errorf("init MongoDB failed: %w", err)
	}
	logger.L().Info("MongoDB initialized successfully")

	db := mongoClient.Database()
	chartRepo := repository.NewMongoChartOfAccountsRepository(db)
	entryRepo := repository.NewMongoAccountingEntryRepository(db)
	balanceRepo := repository.NewMongoAccountBalanceRepository(db)
	periodRepo := repository.NewMongoClosedPeriodRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, idx := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{chartRepo, entryRepo, balanceRepo, periodRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			_ = mongoClient.Close(context.Background())
			return nil, fmt.Errorf("ensure indexes failed: %w", err)
		}
	}

	chart := service.NewChartService(chartRepo)
	entries := service.NewEntryService(entryRepo, balanceRepo)
	trialBalance := service.NewTrialBalanceService(entryRepo, chart)
	closing := service.NewClosingService(trialBalance, entries, chart, periodRepo)
	balances := service.NewBalanceService(balanceRepo)

	return &App{
		MongoDB:      mongoClient,
		Chart:        chart,
		Entries:      entries,
		TrialBalance: trialBalance,
		Closing:      closing,
		Balances:     balances,
	}, nil
}

// Close releases all held resources. Call on shutdown.
func (a *App) Close(ctx context.Context) error {
	if a.MongoDB != nil {
		if err := a.MongoDB.Close(ctx); err != nil {
			return fmt.Errorf("close MongoDB failed: %w", err)
		}
	}
	return nil
}

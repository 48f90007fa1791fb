package service

import (
	"context"
	"fmt"

	"mizan/internal/ledger/models"
	"mizan/internal/ledger/repository"
	"mizan/internal/logger"
)

// ChartServiceImpl 会计科目表服务实现
type ChartServiceImpl struct {
	chartRepo repository.ChartOfAccountsRepository
}

// NewChartService 创建科目表服务
func NewChartService(chartRepo repository.ChartOfAccountsRepository) ChartService {
	return &ChartServiceImpl{chartRepo: chartRepo}
}

// Initialize overwrites the chart collection with the default accounts.
// This is a wholesale replace; callers must make sure it only runs when a
// fresh chart is wanted.
func (s *ChartServiceImpl) Initialize(ctx context.Context) error {
	defaults := DefaultChartOfAccounts()

	if err := s.chartRepo.Replace(ctx, defaults); err != nil {
		logger.L().Errorf("Failed to seed chart of accounts: %v", err)
		return fmt.Errorf("initializing chart of accounts: %w", err)
	}

	logger.L().Infof("Chart of accounts seeded with %d default accounts", len(defaults))
	return nil
}

// Accounts returns the chart, seeding the defaults iff the collection is
// empty. Existing accounts are never re-seeded or merged.
func (s *ChartServiceImpl) Accounts(ctx context.Context) ([]*models.Account, error) {
	accounts, err := s.chartRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}

	if len(accounts) > 0 {
		return accounts, nil
	}

	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	accounts, err = s.chartRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}
	return accounts, nil
}

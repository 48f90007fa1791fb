package service

import (
	"context"
	"fmt"

	"mizan/internal/ledger/models"
	"mizan/internal/ledger/repository"
)

// BalanceServiceImpl 账户余额服务实现
type BalanceServiceImpl struct {
	balanceRepo repository.AccountBalanceRepository
}

// NewBalanceService 创建余额服务
func NewBalanceService(balanceRepo repository.AccountBalanceRepository) BalanceService {
	return &BalanceServiceImpl{balanceRepo: balanceRepo}
}

// Balances returns the materialized per-account positions for dashboards.
func (s *BalanceServiceImpl) Balances(ctx context.Context) ([]*models.AccountBalance, error) {
	balances, err := s.balanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account balances: %w", err)
	}
	return balances, nil
}

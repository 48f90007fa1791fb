package service

import (
	"context"
	"errors"
	"testing"

	"mizan/internal/ledger/models"
)

func TestAccountsSeedsDefaultsWhenEmpty(t *testing.T) {
	repo := &stubChartRepository{}
	chart := NewChartService(repo)

	accounts, err := chart.Accounts(context.Background())
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}

	if len(accounts) != len(DefaultChartOfAccounts()) {
		t.Fatalf("expected %d seeded accounts, got %d", len(DefaultChartOfAccounts()), len(accounts))
	}
	if repo.replaceCalls != 1 {
		t.Fatalf("expected exactly one seed write, got %d", repo.replaceCalls)
	}

	// The five statement mains from the standard chart are present.
	byCode := make(map[string]*models.Account)
	for _, account := range accounts {
		byCode[account.Code] = account
	}
	for code, typ := range map[string]models.AccountType{
		"1000": models.AccountTypeAsset,
		"2000": models.AccountTypeLiability,
		"3000": models.AccountTypeEquity,
		"4000": models.AccountTypeRevenue,
		"5000": models.AccountTypeExpense,
	} {
		account, ok := byCode[code]
		if !ok {
			t.Fatalf("missing main account %s", code)
		}
		if account.Type != typ {
			t.Fatalf("account %s: expected type %s, got %s", code, typ, account.Type)
		}
	}

	if re, ok := byCode[RetainedEarningsCode]; !ok || re.Type != models.AccountTypeEquity {
		t.Fatalf("expected retained earnings equity account %s in seed", RetainedEarningsCode)
	}
}

func TestAccountsDoesNotReseedExistingChart(t *testing.T) {
	custom := []*models.Account{
		{Code: "1110", Name: "Cash", Type: models.AccountTypeAsset},
	}
	repo := &stubChartRepository{accounts: custom}
	chart := NewChartService(repo)

	accounts, err := chart.Accounts(context.Background())
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}

	if repo.replaceCalls != 0 {
		t.Fatalf("existing chart must not be re-seeded")
	}
	if len(accounts) != 1 || accounts[0].Code != "1110" {
		t.Fatalf("expected the stored chart back, got %+v", accounts)
	}
}

func TestInitializeOverwritesChart(t *testing.T) {
	repo := &stubChartRepository{accounts: []*models.Account{
		{Code: "9000", Name: "Legacy", Type: models.AccountTypeAsset},
	}}
	chart := NewChartService(repo)

	if err := chart.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if len(repo.accounts) != len(DefaultChartOfAccounts()) {
		t.Fatalf("expected defaults to replace the chart, got %d accounts", len(repo.accounts))
	}
	for _, account := range repo.accounts {
		if account.Code == "9000" {
			t.Fatalf("old account survived the overwrite")
		}
	}
}

func TestAccountsPropagatesStorageFailure(t *testing.T) {
	repo := &stubChartRepository{listErr: errors.New("mongo unavailable")}
	chart := NewChartService(repo)

	if _, err := chart.Accounts(context.Background()); err == nil {
		t.Fatalf("expected storage failure to propagate")
	}
}

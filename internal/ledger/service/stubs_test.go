package service

import (
	"context"
	"errors"
	"time"

	"mizan/internal/ledger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository stubs shared by the service tests.

type stubEntryRepository struct {
	entries   []*models.AccountingEntry
	insertErr error
	listErr   error
	deleteErr error
}

func (s *stubEntryRepository) Insert(ctx context.Context, entry *models.AccountingEntry) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubEntryRepository) ListAll(ctx context.Context) ([]*models.AccountingEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries, nil
}

func (s *stubEntryRepository) ListThrough(ctx context.Context, asOf time.Time) ([]*models.AccountingEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var filtered []*models.AccountingEntry
	for _, entry := range s.entries {
		if !entry.Date.After(asOf) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func (s *stubEntryRepository) Delete(ctx context.Context, id string) (*models.AccountingEntry, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	for i, entry := range s.entries {
		if entry.ID.Hex() == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return entry, nil
		}
	}
	return nil, nil
}

func (s *stubEntryRepository) EnsureIndexes(ctx context.Context) error { return nil }

type stubBalanceRepository struct {
	nets     map[string]float64
	names    map[string]string
	dates    map[string]time.Time
	applyErr error
}

func newStubBalanceRepository() *stubBalanceRepository {
	return &stubBalanceRepository{
		nets:  make(map[string]float64),
		names: make(map[string]string),
		dates: make(map[string]time.Time),
	}
}

func (s *stubBalanceRepository) Apply(ctx context.Context, accountCode, accountName string, delta float64, txDate time.Time) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	s.nets[accountCode] += delta
	s.names[accountCode] = accountName
	if !txDate.IsZero() {
		s.dates[accountCode] = txDate
	}
	return nil
}

func (s *stubBalanceRepository) List(ctx context.Context) ([]*models.AccountBalance, error) {
	var balances []*models.AccountBalance
	for code, net := range s.nets {
		balances = append(balances, &models.AccountBalance{
			AccountCode:         code,
			AccountName:         s.names[code],
			Net:                 net,
			LastTransactionDate: s.dates[code],
		})
	}
	return balances, nil
}

func (s *stubBalanceRepository) EnsureIndexes(ctx context.Context) error { return nil }

type stubChartRepository struct {
	accounts     []*models.Account
	listErr      error
	replaceErr   error
	replaceCalls int
}

func (s *stubChartRepository) List(ctx context.Context) ([]*models.Account, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.accounts, nil
}

func (s *stubChartRepository) Replace(ctx context.Context, accounts []*models.Account) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaceCalls++
	s.accounts = accounts
	return nil
}

func (s *stubChartRepository) EnsureIndexes(ctx context.Context) error { return nil }

type stubPeriodRepository struct {
	closed    map[string]*models.ClosedPeriod
	isClosedE error
	markErr   error
}

func newStubPeriodRepository() *stubPeriodRepository {
	return &stubPeriodRepository{closed: make(map[string]*models.ClosedPeriod)}
}

func (s *stubPeriodRepository) IsClosed(ctx context.Context, period string) (bool, error) {
	if s.isClosedE != nil {
		return false, s.isClosedE
	}
	_, ok := s.closed[period]
	return ok, nil
}

func (s *stubPeriodRepository) MarkClosed(ctx context.Context, closed *models.ClosedPeriod) error {
	if s.markErr != nil {
		return s.markErr
	}
	if _, ok := s.closed[closed.Period]; ok {
		return errors.New("duplicate period")
	}
	s.closed[closed.Period] = closed
	return nil
}

func (s *stubPeriodRepository) EnsureIndexes(ctx context.Context) error { return nil }

// newLedgerFixture wires real services over the in-memory stubs so tests
// exercise the full create -> replay -> close pipeline.
type ledgerFixture struct {
	entryRepo   *stubEntryRepository
	balanceRepo *stubBalanceRepository
	chartRepo   *stubChartRepository
	periodRepo  *stubPeriodRepository

	chart        ChartService
	entries      EntryService
	trialBalance TrialBalanceService
	closing      ClosingService
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		entryRepo:   &stubEntryRepository{},
		balanceRepo: newStubBalanceRepository(),
		chartRepo:   &stubChartRepository{accounts: DefaultChartOfAccounts()},
		periodRepo:  newStubPeriodRepository(),
	}
	f.chart = NewChartService(f.chartRepo)
	f.entries = NewEntryService(f.entryRepo, f.balanceRepo)
	f.trialBalance = NewTrialBalanceService(f.entryRepo, f.chart)
	f.closing = NewClosingService(f.trialBalance, f.entries, f.chart, f.periodRepo)
	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

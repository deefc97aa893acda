package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/storage"
)

const defaultAccountLimit = 20

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor actionProcessor
	logger    logrus.FieldLogger
}

// NewAccountService creates a new AccountService. New accounts narrate to logger.
func NewAccountService(store *storage.Storage, processor actionProcessor, logger logrus.FieldLogger) *AccountService {
	return &AccountService{storage: store, processor: processor, logger: logger}
}

// OpenAccount registers a new account and returns a copy of it.
func (s *AccountService) OpenAccount(ctx context.Context, open AccountOpen) (*Account, error) {
	action := &actions.OpenAccount{
		Type:           open.Type,
		Number:         open.Number,
		Holder:         open.Holder,
		InitialBalance: open.InitialBalance,
		Savings:        open.Savings,
		Checking:       open.Checking,
		Logger:         s.logger,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return s.GetAccount(ctx, open.Number)
}

// GetAccount retrieves an account by number.
func (s *AccountService) GetAccount(ctx context.Context, number string) (*Account, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	found, err := reader.FindAccount(number)
	if err != nil {
		return nil, err
	}

	account := accountFromBank(found)
	return &account, nil
}

// ListAccounts returns a page of accounts in opening order using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}
	if limit < 1 {
		limit = defaultAccountLimit
	}

	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	accounts, next := page(reader.Accounts(), offset, limit)
	if len(accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if next >= 0 {
		nextCursor = &AccountCursor{
			Position: next,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(accounts))
	for i, account := range accounts {
		convertedAccounts[i] = accountFromBank(account)
	}

	return convertedAccounts, nextCursor, nil
}

// ProcessEndOfMonth applies interest and fees to every account.
func (s *AccountService) ProcessEndOfMonth(ctx context.Context) ([]CycleReport, error) {
	action := &actions.EndOfMonth{}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	reports := make([]CycleReport, len(action.Reports))
	for i, report := range action.Reports {
		reports[i] = cycleReportFromRegistry(report)
	}
	return reports, nil
}

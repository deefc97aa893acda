package service

import (
	"context"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/storage"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

func (s *TransactionService) Deposit(ctx context.Context, movement Movement) (*MovementResult, error) {
	action := &actions.Deposit{
		AccountNumber: movement.AccountNumber,
		Amount:        movement.Amount,
		Description:   movement.Description,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &MovementResult{
		Transaction: transactionFromLedger(action.Transaction),
		Balance:     action.Balance,
	}, nil
}

func (s *TransactionService) Withdraw(ctx context.Context, movement Movement) (*MovementResult, error) {
	action := &actions.Withdraw{
		AccountNumber: movement.AccountNumber,
		Amount:        movement.Amount,
		Description:   movement.Description,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &MovementResult{
		Transaction: transactionFromLedger(action.Transaction),
		Balance:     action.Balance,
	}, nil
}

func (s *TransactionService) Transfer(ctx context.Context, request TransferRequest) (*TransferResult, error) {
	action := &actions.Transfer{
		FromAccountNumber: request.FromAccountNumber,
		ToAccountNumber:   request.ToAccountNumber,
		Amount:            request.Amount,
		Description:       request.Description,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &TransferResult{
		Out:         transactionFromLedger(action.Transactions[0]),
		In:          transactionFromLedger(action.Transactions[1]),
		FromBalance: action.FromBalance,
		ToBalance:   action.ToBalance,
	}, nil
}

// ListTransactions returns a page of the ledger in recording order using
// cursor-based pagination. accountNumber filters the first page; later pages
// take the filter from the cursor.
func (s *TransactionService) ListTransactions(ctx context.Context, accountNumber string, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		accountNumber = cursor.AccountNumber
	}
	if limit < 1 {
		limit = defaultLimit
	}

	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, nil, err
	}
	var all []*ledger.Transaction
	if accountNumber != "" {
		all = reader.TransactionsFor(accountNumber)
	} else {
		all = reader.Transactions()
	}
	reader.Close()

	rows, next := page(all, offset, limit)
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if next >= 0 {
		nextCursor = &TransactionCursor{
			Position:      next,
			Limit:         limit,
			AccountNumber: accountNumber,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromLedger(row)
	}

	return convertedTransactions, nextCursor, nil
}

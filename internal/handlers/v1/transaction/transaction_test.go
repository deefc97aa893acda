package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Deposit(ctx context.Context, movement service.Movement) (*service.MovementResult, error) {
	args := m.Called(ctx, movement)
	result, _ := args.Get(0).(*service.MovementResult)
	return result, args.Error(1)
}

func (m *mockTransactionService) Withdraw(ctx context.Context, movement service.Movement) (*service.MovementResult, error) {
	args := m.Called(ctx, movement)
	result, _ := args.Get(0).(*service.MovementResult)
	return result, args.Error(1)
}

func (m *mockTransactionService) Transfer(ctx context.Context, request service.TransferRequest) (*service.TransferResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*service.TransferResult)
	return result, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, accountNumber string, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, accountNumber, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

var testDate = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func makeTransaction(accountNumber string, txType ledger.TransactionType, amount string) service.Transaction {
	id := uuid.Must(uuid.NewV7())
	return service.Transaction{
		ID:              id,
		CorrelationID:   id,
		Reference:       "REF_" + id.String(),
		AccountNumber:   accountNumber,
		Type:            txType,
		Amount:          amt(amount),
		TransactionDate: testDate,
		Description:     "test",
		Summary:         "summary",
	}
}

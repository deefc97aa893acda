package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/operator/actions"
)

func expectMovement(processor *mockProcessor) {
	processor.On("Process", mock.Anything, mock.Anything).Return(nil)
}

// -- Deposit and Withdraw tests --

func TestDeposit_Success(t *testing.T) {
	svc, processor := newTestService(t)
	seedAccounts(t, svc, processor)
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.Deposit) bool {
		return a.AccountNumber == "SAV001" && a.Amount.Equal(amt("1000.00")) && a.Description == "Salary deposit"
	})).Return(nil)

	result, err := svc.Transaction.Deposit(context.Background(), Movement{
		AccountNumber: "SAV001",
		Amount:        amt("1000.00"),
		Description:   "Salary deposit",
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.TransactionTypeDeposit, result.Transaction.Type)
	assert.Equal(t, "SAV001", result.Transaction.AccountNumber)
	assert.Contains(t, result.Transaction.Reference, "DEP_")
	assert.Contains(t, result.Transaction.Summary, "Rs.1000.00")
	assert.True(t, result.Balance.Equal(amt("6000.00")))
}

func TestDeposit_NonPositive(t *testing.T) {
	svc, processor := newTestService(t)
	seedAccounts(t, svc, processor)
	expectMovement(processor)

	result, err := svc.Transaction.Deposit(context.Background(), Movement{AccountNumber: "SAV001", Amount: amt("0")})

	assert.ErrorIs(t, err, bank.ErrNonPositiveAmount)
	assert.Nil(t, result)
}

func TestWithdraw_Success(t *testing.T) {
	svc, processor := newTestService(t)
	seedAccounts(t, svc, processor)
	expectMovement(processor)

	result, err := svc.Transaction.Withdraw(context.Background(), Movement{
		AccountNumber: "CHK001",
		Amount:        amt("3000.00"),
		Description:   "Rent payment",
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.TransactionTypeWithdrawal, result.Transaction.Type)
	assert.True(t, result.Balance.Equal(amt("-500.00")))
}

func TestWithdraw_OverdraftLimit(t *testing.T) {
	svc, processor := newTestService(t)
	seedAccounts(t, svc, processor)
	expectMovement(processor)

	result, err := svc.Transaction.Withdraw(context.Background(), Movement{AccountNumber: "CHK001", Amount: amt("3000.01")})

	assert.ErrorIs(t, err, bank.ErrOverdraftLimit)
	assert.Nil(t, result)
}

func TestWithdraw_ProcessorError(t *testing.T) {
	svc, processor := newTestService(t)
	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("queue closed"))

	result, err := svc.Transaction.Withdraw(context.Background(), Movement{AccountNumber: "CHK001", Amount: amt("1")})

	assert.EqualError(t, err, "queue closed")
	assert.Nil(t, result)
}

// -- Transfer tests --

func TestTransfer_Success(t *testing.T) {
	svc, processor := newTestService(t)
	seedAccounts(t, svc, processor)
	expectMovement(processor)

	result, err := svc.Transaction.Transfer(context.Background(), TransferRequest{
		FromAccountNumber: "SAV001",
		ToAccountNumber:   "CHK001",
		Amount:            amt("1500.00"),
		Description:       "Fund transfer",
	})

	require.NoError(t, err)
	assert.Equal(t, ledger.TransactionTypeTransferOut, result.Out.Type)
	assert.Equal(t, "SAV001", result.Out.AccountNumber)
	assert.Equal(t, ledger.TransactionTypeTransferIn, result.In.Type)
	assert.Equal(t, "CHK001", result.In.AccountNumber)
	assert.Equal(t, result.Out.CorrelationID, result.In.CorrelationID)
	assert.NotEqual(t, result.Out.ID, result.In.ID)
	assert.True(t, result.FromBalance.Equal(amt("3500.00")))
	assert.True(t, result.ToBalance.Equal(amt("4000.00")))
}

func TestTransfer_MinimumBalance(t *testing.T) {
	svc, processor := newTestService(t)
	seedAccounts(t, svc, processor)
	expectMovement(processor)

	result, err := svc.Transaction.Transfer(context.Background(), TransferRequest{
		FromAccountNumber: "SAV001",
		ToAccountNumber:   "CHK001",
		Amount:            amt("4500.00"),
	})

	assert.ErrorIs(t, err, bank.ErrMinimumBalance)
	assert.Nil(t, result)

	checking, err := svc.Account.GetAccount(context.Background(), "CHK001")
	require.NoError(t, err)
	assert.True(t, checking.Balance.Equal(amt("2500.00")))
}

// -- ListTransactions tests --

func seedLedger(t *testing.T, svc *Service, processor *mockProcessor) {
	t.Helper()
	seedAccounts(t, svc, processor)
	expectMovement(processor)

	_, err := svc.Transaction.Deposit(context.Background(), Movement{AccountNumber: "SAV001", Amount: amt("1000.00"), Description: "Salary deposit"})
	require.NoError(t, err)
	_, err = svc.Transaction.Withdraw(context.Background(), Movement{AccountNumber: "CHK001", Amount: amt("3000.00"), Description: "Rent payment"})
	require.NoError(t, err)
	_, err = svc.Transaction.Transfer(context.Background(), TransferRequest{FromAccountNumber: "SAV001", ToAccountNumber: "CHK001", Amount: amt("1500.00"), Description: "Fund transfer"})
	require.NoError(t, err)
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, _ := newTestService(t)

	transactions, next, err := svc.Transaction.ListTransactions(context.Background(), "", nil)

	assert.NoError(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, next)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, processor := newTestService(t)
	seedLedger(t, svc, processor)

	transactions, next, err := svc.Transaction.ListTransactions(context.Background(), "", nil)

	assert.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, transactions, 4)
	assert.Equal(t, ledger.TransactionTypeDeposit, transactions[0].Type)
	assert.Equal(t, ledger.TransactionTypeWithdrawal, transactions[1].Type)
	assert.Equal(t, ledger.TransactionTypeTransferOut, transactions[2].Type)
	assert.Equal(t, ledger.TransactionTypeTransferIn, transactions[3].Type)
}

func TestListTransactions_AccountFilterCarriedByCursor(t *testing.T) {
	svc, processor := newTestService(t)
	seedLedger(t, svc, processor)

	transactions, next, err := svc.Transaction.ListTransactions(context.Background(), "CHK001", &TransactionCursor{Limit: 1, AccountNumber: "CHK001"})

	assert.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, ledger.TransactionTypeWithdrawal, transactions[0].Type)
	require.NotNil(t, next)
	assert.Equal(t, 1, next.Position)
	assert.Equal(t, "CHK001", next.AccountNumber)

	transactions, next, err = svc.Transaction.ListTransactions(context.Background(), "", next)

	assert.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, ledger.TransactionTypeTransferIn, transactions[0].Type)
	assert.Nil(t, next)
}

func TestListTransactions_AccountFilterFirstPage(t *testing.T) {
	svc, processor := newTestService(t)
	seedLedger(t, svc, processor)

	transactions, next, err := svc.Transaction.ListTransactions(context.Background(), "SAV001", nil)

	assert.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, transactions, 2)
	for _, tx := range transactions {
		assert.Equal(t, "SAV001", tx.AccountNumber)
	}
}

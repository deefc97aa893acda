package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/registry"
	"github.com/carson-networks/bank-server/internal/storage"
)

// mockProcessor records each action and, unless told to fail, performs it
// directly against storage.
type mockProcessor struct {
	mock.Mock
	storage *storage.Storage
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	if err := args.Error(0); err != nil {
		return err
	}

	writer, err := m.storage.Write(ctx)
	if err != nil {
		return err
	}
	defer writer.Close()
	return action.Perform(ctx, writer)
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *mockProcessor) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store := storage.NewStorage(registry.New(logger))
	processor := &mockProcessor{storage: store}
	t.Cleanup(func() { processor.AssertExpectations(t) })
	return NewService(store, processor, logger), processor
}

// seedAccounts opens SAV001 (5000.00, 3%, min 1000.00) and CHK001 (2500.00,
// overdraft 500.00, fee 10.00, 5 free, 2.50 each).
func seedAccounts(t *testing.T, svc *Service, processor *mockProcessor) {
	t.Helper()
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.OpenAccount")).Return(nil).Twice()

	_, err := svc.Account.OpenAccount(context.Background(), AccountOpen{
		Number:         "SAV001",
		Holder:         "John Doe",
		Type:           bank.AccountTypeSavings,
		InitialBalance: amt("5000.00"),
		Savings:        bank.SavingsTerms{InterestRate: amt("0.03"), MinimumBalance: amt("1000.00")},
	})
	require.NoError(t, err)

	_, err = svc.Account.OpenAccount(context.Background(), AccountOpen{
		Number:         "CHK001",
		Holder:         "John Doe",
		Type:           bank.AccountTypeChecking,
		InitialBalance: amt("2500.00"),
		Checking: bank.CheckingTerms{
			OverdraftLimit:   amt("500.00"),
			MonthlyFee:       amt("10.00"),
			FreeTransactions: 5,
			TransactionFee:   amt("2.50"),
		},
	})
	require.NoError(t, err)
}

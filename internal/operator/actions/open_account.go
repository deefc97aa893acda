package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/metrics"
	"github.com/carson-networks/bank-server/internal/registry"
	"github.com/carson-networks/bank-server/internal/storage"
)

type OpenAccount struct {
	Type           bank.AccountType
	Number         string
	Holder         string
	InitialBalance decimal.Decimal
	Savings        bank.SavingsTerms
	Checking       bank.CheckingTerms
	// Logger receives the new account's narration. Nil keeps the standard logger.
	Logger logrus.FieldLogger
}

func (o *OpenAccount) Name() string {
	return "OpenAccount"
}

func (o *OpenAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.FindAccount(o.Number)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrAccountExists, o.Number)
	}
	if !errors.Is(err, registry.ErrAccountNotFound) {
		return err
	}

	var account bank.Account
	switch o.Type {
	case bank.AccountTypeSavings:
		account = bank.NewSavingsAccount(o.Number, o.Holder, o.InitialBalance, o.Savings)
	case bank.AccountTypeChecking:
		account = bank.NewCheckingAccount(o.Number, o.Holder, o.InitialBalance, o.Checking)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAccountType, o.Type)
	}
	if o.Logger != nil {
		account.SetLogger(o.Logger)
	}

	writer.AddAccount(account)
	metrics.RecordAccountOpened(string(o.Type))
	return nil
}

// Package bank holds the account model: the Account contract, its Savings and
// Checking variants, and the transfer rule shared by every variant.
package bank

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountType tags the variant of an account.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

// Account is the contract every account variant satisfies.
//
// Mutators return one of the package's sentinel errors when the operation is
// rejected; a rejected operation never changes state. The set of variants is
// closed to this package.
type Account interface {
	Number() string
	Holder() string
	Type() AccountType
	Balance() decimal.Decimal

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	// ApplyInterest accrues one month of interest and returns the amount added.
	ApplyInterest() decimal.Decimal
	// CalculateFees returns the fees due for the current cycle without charging them.
	CalculateFees() decimal.Decimal
	// Describe renders the account for display.
	Describe() logrus.Fields

	SetLogger(logger logrus.FieldLogger)

	narrator() *logrus.Entry
}

// EndOfCycle is implemented by accounts that have end-of-month behaviour.
type EndOfCycle interface {
	EndCycle() CycleResult
}

// CycleResult is what one end-of-cycle step did to an account.
type CycleResult struct {
	Interest decimal.Decimal
	Fees     decimal.Decimal
}

type baseAccount struct {
	number      string
	holder      string
	accountType AccountType
	balance     decimal.Decimal
	logger      logrus.FieldLogger
}

func newBaseAccount(number, holder string, initialBalance decimal.Decimal, accountType AccountType) baseAccount {
	return baseAccount{
		number:      number,
		holder:      holder,
		accountType: accountType,
		balance:     initialBalance,
		logger:      logrus.StandardLogger(),
	}
}

func (a *baseAccount) Number() string {
	return a.number
}

func (a *baseAccount) Holder() string {
	return a.holder
}

func (a *baseAccount) Type() AccountType {
	return a.accountType
}

func (a *baseAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *baseAccount) SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	a.logger = logger
}

func (a *baseAccount) Describe() logrus.Fields {
	return logrus.Fields{
		"accountNumber": a.number,
		"accountHolder": a.holder,
		"accountType":   string(a.accountType),
		"balance":       FormatAmount(a.balance),
	}
}

func (a *baseAccount) narrator() *logrus.Entry {
	return a.logger.WithFields(logrus.Fields{
		"accountNumber": a.number,
		"accountType":   string(a.accountType),
	})
}

// Transfer moves amount from one account to another.
//
// The source balance must cover the amount before the source variant's own
// withdrawal rule is consulted, so a Savings source can still refuse a transfer
// its balance covers when the minimum balance would be crossed.
func Transfer(from, to Account, amount decimal.Decimal) error {
	log := from.narrator().WithFields(logrus.Fields{
		"targetAccountNumber": to.Number(),
		"amount":              FormatAmount(amount),
	})

	if amount.Sign() <= 0 {
		log.WithError(ErrNonPositiveAmount).Warn("Account.Transfer.rejected")
		return ErrNonPositiveAmount
	}

	if from.Number() == to.Number() {
		log.WithError(ErrSameAccount).Warn("Account.Transfer.rejected")
		return ErrSameAccount
	}

	if from.Balance().LessThan(amount) {
		log.WithError(ErrInsufficientFunds).Warn("Account.Transfer.rejected")
		return ErrInsufficientFunds
	}

	if err := from.Withdraw(amount); err != nil {
		log.WithError(err).Warn("Account.Transfer.rejected")
		return err
	}
	if err := to.Deposit(amount); err != nil {
		return err
	}

	log.Info("Account.Transfer.complete")
	return nil
}

// FormatAmount renders an amount with the currency prefix and two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return "Rs." + amount.StringFixed(2)
}

// Package registry keeps the bank's accounts and its transaction log in memory.
//
// A Registry is not safe for concurrent use; see the storage package.
package registry

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/ledger"
)

var ErrAccountNotFound = errors.New("account not found")

// CycleReport is the outcome of end-of-month processing for one account.
type CycleReport struct {
	AccountNumber string
	AccountType   bank.AccountType
	Interest      decimal.Decimal
	Fees          decimal.Decimal
	Balance       decimal.Decimal
	// Skipped is set for accounts without end-of-cycle behaviour.
	Skipped bool
}

// Registry holds accounts in insertion order and an append-only transaction log.
type Registry struct {
	accounts     []bank.Account
	transactions []*ledger.Transaction
	logger       logrus.FieldLogger
}

func New(logger logrus.FieldLogger) *Registry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Registry{logger: logger}
}

// AddAccount appends an account. Account numbers are not checked for uniqueness.
func (r *Registry) AddAccount(account bank.Account) {
	r.accounts = append(r.accounts, account)
	r.logger.WithField("accountNumber", account.Number()).Info("Registry.AddAccount")
}

// FindAccount returns the first account with the given number.
func (r *Registry) FindAccount(accountNumber string) (bank.Account, error) {
	for _, account := range r.accounts {
		if account.Number() == accountNumber {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *Registry) RecordTransaction(tx *ledger.Transaction) {
	r.transactions = append(r.transactions, tx)
}

func (r *Registry) RecordTransactions(txs ...*ledger.Transaction) {
	r.transactions = append(r.transactions, txs...)
}

// Accounts returns the accounts in insertion order.
func (r *Registry) Accounts() []bank.Account {
	out := make([]bank.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Transactions returns the transaction log in insertion order.
func (r *Registry) Transactions() []*ledger.Transaction {
	out := make([]*ledger.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// TransactionsFor returns the transactions recorded against one account.
func (r *Registry) TransactionsFor(accountNumber string) []*ledger.Transaction {
	var out []*ledger.Transaction
	for _, tx := range r.transactions {
		if tx.AccountNumber() == accountNumber {
			out = append(out, tx)
		}
	}
	return out
}

// ProcessEndOfMonth runs end-of-cycle processing for every account, in order.
// Accounts that do not implement bank.EndOfCycle are left untouched.
func (r *Registry) ProcessEndOfMonth() []CycleReport {
	reports := make([]CycleReport, 0, len(r.accounts))
	for _, account := range r.accounts {
		report := CycleReport{
			AccountNumber: account.Number(),
			AccountType:   account.Type(),
			Interest:      decimal.Zero,
			Fees:          decimal.Zero,
		}

		if cycler, ok := account.(bank.EndOfCycle); ok {
			result := cycler.EndCycle()
			report.Interest = result.Interest
			report.Fees = result.Fees
		} else {
			report.Skipped = true
			r.logger.WithField("accountNumber", account.Number()).Debug("Registry.ProcessEndOfMonth.skipped")
		}

		report.Balance = account.Balance()
		reports = append(reports, report)
	}

	r.logger.WithField("accountCount", len(reports)).Info("Registry.ProcessEndOfMonth.complete")
	return reports
}

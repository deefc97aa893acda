package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/registry"
)

// Account is a point-in-time copy of an account in the service layer.
type Account struct {
	Number      string
	Holder      string
	Type        bank.AccountType
	Balance     decimal.Decimal
	PendingFees decimal.Decimal
	Savings     *SavingsDetails
	Checking    *CheckingDetails
}

type SavingsDetails struct {
	InterestRate   decimal.Decimal
	MinimumBalance decimal.Decimal
}

type CheckingDetails struct {
	OverdraftLimit   decimal.Decimal
	MonthlyFee       decimal.Decimal
	FreeTransactions int
	TransactionFee   decimal.Decimal
	TransactionCount int
}

// AccountOpen describes an account to open. Only the terms matching Type are used.
type AccountOpen struct {
	Number         string
	Holder         string
	Type           bank.AccountType
	InitialBalance decimal.Decimal
	Savings        bank.SavingsTerms
	Checking       bank.CheckingTerms
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// CycleReport is the end-of-month outcome for one account.
type CycleReport struct {
	AccountNumber string
	AccountType   bank.AccountType
	Interest      decimal.Decimal
	Fees          decimal.Decimal
	Balance       decimal.Decimal
	Skipped       bool
}

// accountFromBank copies a live account. The caller must hold the registry lock.
func accountFromBank(a bank.Account) Account {
	out := Account{
		Number:      a.Number(),
		Holder:      a.Holder(),
		Type:        a.Type(),
		Balance:     a.Balance(),
		PendingFees: a.CalculateFees(),
	}

	switch acct := a.(type) {
	case *bank.SavingsAccount:
		out.Savings = &SavingsDetails{
			InterestRate:   acct.InterestRate(),
			MinimumBalance: acct.MinimumBalance(),
		}
	case *bank.CheckingAccount:
		out.Checking = &CheckingDetails{
			OverdraftLimit:   acct.OverdraftLimit(),
			MonthlyFee:       acct.MonthlyFee(),
			FreeTransactions: acct.FreeTransactions(),
			TransactionFee:   acct.TransactionFee(),
			TransactionCount: acct.TransactionCount(),
		}
	}

	return out
}

func cycleReportFromRegistry(r registry.CycleReport) CycleReport {
	return CycleReport{
		AccountNumber: r.AccountNumber,
		AccountType:   r.AccountType,
		Interest:      r.Interest,
		Fees:          r.Fees,
		Balance:       r.Balance,
		Skipped:       r.Skipped,
	}
}

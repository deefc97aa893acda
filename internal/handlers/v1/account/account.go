package account

import (
	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	AccountNumber string    `json:"accountNumber" doc:"Account number"`
	AccountHolder string    `json:"accountHolder" doc:"Account holder name"`
	Type          string    `json:"type" enum:"Savings,Checking" doc:"Account type"`
	Balance       string    `json:"balance" doc:"Decimal balance, may be negative for Checking"`
	Display       string    `json:"display" doc:"Balance formatted for display, e.g. Rs.4511.25"`
	PendingFees   string    `json:"pendingFees" doc:"Fees end-of-month processing would charge now"`
	Savings       *Savings  `json:"savings,omitempty" doc:"Savings terms, present for Savings accounts"`
	Checking      *Checking `json:"checking,omitempty" doc:"Checking terms, present for Checking accounts"`
}

type Savings struct {
	InterestRate   string `json:"interestRate" doc:"Annual interest rate as a fraction, e.g. 0.03"`
	MinimumBalance string `json:"minimumBalance" doc:"Balance a withdrawal may not go below"`
}

type Checking struct {
	OverdraftLimit   string `json:"overdraftLimit" doc:"How far below zero the balance may go"`
	MonthlyFee       string `json:"monthlyFee" doc:"Fee charged every month"`
	FreeTransactions int    `json:"freeTransactions" doc:"Transactions per month without a fee"`
	TransactionFee   string `json:"transactionFee" doc:"Fee per transaction beyond the free ones"`
	TransactionCount int    `json:"transactionCount" doc:"Transactions since the last end-of-month"`
}

func toAPIAccount(acc service.Account) Account {
	out := Account{
		AccountNumber: acc.Number,
		AccountHolder: acc.Holder,
		Type:          string(acc.Type),
		Balance:       apierror.Money(acc.Balance),
		Display:       bank.FormatAmount(acc.Balance),
		PendingFees:   apierror.Money(acc.PendingFees),
	}

	if acc.Savings != nil {
		out.Savings = &Savings{
			InterestRate:   acc.Savings.InterestRate.String(),
			MinimumBalance: apierror.Money(acc.Savings.MinimumBalance),
		}
	}
	if acc.Checking != nil {
		out.Checking = &Checking{
			OverdraftLimit:   apierror.Money(acc.Checking.OverdraftLimit),
			MonthlyFee:       apierror.Money(acc.Checking.MonthlyFee),
			FreeTransactions: acc.Checking.FreeTransactions,
			TransactionFee:   apierror.Money(acc.Checking.TransactionFee),
			TransactionCount: acc.Checking.TransactionCount,
		}
	}

	return out
}

package bank

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var monthsPerYear = decimal.NewFromInt(12)

// SavingsTerms are the fixed parameters of a savings account.
type SavingsTerms struct {
	InterestRate   decimal.Decimal // annual, 0.03 = 3%
	MinimumBalance decimal.Decimal
}

// SavingsAccount keeps its balance at or above a minimum and earns monthly interest.
// It charges no fees.
type SavingsAccount struct {
	baseAccount
	interestRate   decimal.Decimal
	minimumBalance decimal.Decimal
}

var (
	_ Account    = (*SavingsAccount)(nil)
	_ EndOfCycle = (*SavingsAccount)(nil)
)

func NewSavingsAccount(number, holder string, initialBalance decimal.Decimal, terms SavingsTerms) *SavingsAccount {
	return &SavingsAccount{
		baseAccount:    newBaseAccount(number, holder, initialBalance, AccountTypeSavings),
		interestRate:   terms.InterestRate,
		minimumBalance: terms.MinimumBalance,
	}
}

func (a *SavingsAccount) InterestRate() decimal.Decimal {
	return a.interestRate
}

func (a *SavingsAccount) MinimumBalance() decimal.Decimal {
	return a.minimumBalance
}

func (a *SavingsAccount) Deposit(amount decimal.Decimal) error {
	log := a.narrator().WithField("amount", FormatAmount(amount))
	if amount.Sign() <= 0 {
		log.WithError(ErrNonPositiveAmount).Warn("SavingsAccount.Deposit.rejected")
		return ErrNonPositiveAmount
	}

	a.balance = a.balance.Add(amount)
	log.Info("SavingsAccount.Deposit.complete")
	return nil
}

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	log := a.narrator().WithField("amount", FormatAmount(amount))
	if amount.Sign() <= 0 {
		log.WithError(ErrNonPositiveAmount).Warn("SavingsAccount.Withdraw.rejected")
		return ErrNonPositiveAmount
	}
	if a.balance.Sub(amount).LessThan(a.minimumBalance) {
		log.WithError(ErrMinimumBalance).Warn("SavingsAccount.Withdraw.denied")
		return ErrMinimumBalance
	}

	a.balance = a.balance.Sub(amount)
	log.Info("SavingsAccount.Withdraw.complete")
	return nil
}

// ApplyInterest adds balance * interestRate / 12.
func (a *SavingsAccount) ApplyInterest() decimal.Decimal {
	interest := a.balance.Mul(a.interestRate).Div(monthsPerYear)
	a.balance = a.balance.Add(interest)
	a.narrator().WithField("interest", FormatAmount(interest)).Info("SavingsAccount.ApplyInterest.complete")
	return interest
}

func (a *SavingsAccount) CalculateFees() decimal.Decimal {
	return decimal.Zero
}

// EndCycle accrues the month's interest.
func (a *SavingsAccount) EndCycle() CycleResult {
	return CycleResult{Interest: a.ApplyInterest(), Fees: decimal.Zero}
}

func (a *SavingsAccount) Describe() logrus.Fields {
	fields := a.baseAccount.Describe()
	fields["interestRate"] = a.interestRate.Shift(2).String() + "%"
	fields["minimumBalance"] = FormatAmount(a.minimumBalance)
	return fields
}

package bank

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CheckingTerms are the fixed parameters of a checking account.
type CheckingTerms struct {
	OverdraftLimit   decimal.Decimal // magnitude the balance may go below zero
	MonthlyFee       decimal.Decimal
	FreeTransactions int
	TransactionFee   decimal.Decimal // per transaction beyond FreeTransactions
}

// CheckingAccount allows an overdraft, counts transactions per billing cycle and
// charges a monthly fee plus a fee for every transaction beyond the free quota.
// It earns no interest.
type CheckingAccount struct {
	baseAccount
	overdraftLimit   decimal.Decimal
	monthlyFee       decimal.Decimal
	freeTransactions int
	transactionFee   decimal.Decimal
	transactionCount int
}

var (
	_ Account    = (*CheckingAccount)(nil)
	_ EndOfCycle = (*CheckingAccount)(nil)
)

func NewCheckingAccount(number, holder string, initialBalance decimal.Decimal, terms CheckingTerms) *CheckingAccount {
	return &CheckingAccount{
		baseAccount:      newBaseAccount(number, holder, initialBalance, AccountTypeChecking),
		overdraftLimit:   terms.OverdraftLimit,
		monthlyFee:       terms.MonthlyFee,
		freeTransactions: terms.FreeTransactions,
		transactionFee:   terms.TransactionFee,
	}
}

func (a *CheckingAccount) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

func (a *CheckingAccount) MonthlyFee() decimal.Decimal {
	return a.monthlyFee
}

func (a *CheckingAccount) FreeTransactions() int {
	return a.freeTransactions
}

func (a *CheckingAccount) TransactionFee() decimal.Decimal {
	return a.transactionFee
}

// TransactionCount is the number of successful deposits and withdrawals this cycle.
func (a *CheckingAccount) TransactionCount() int {
	return a.transactionCount
}

func (a *CheckingAccount) Deposit(amount decimal.Decimal) error {
	log := a.narrator().WithField("amount", FormatAmount(amount))
	if amount.Sign() <= 0 {
		log.WithError(ErrNonPositiveAmount).Warn("CheckingAccount.Deposit.rejected")
		return ErrNonPositiveAmount
	}

	a.balance = a.balance.Add(amount)
	a.transactionCount++
	log.Info("CheckingAccount.Deposit.complete")
	return nil
}

func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	log := a.narrator().WithField("amount", FormatAmount(amount))
	if amount.Sign() <= 0 {
		log.WithError(ErrNonPositiveAmount).Warn("CheckingAccount.Withdraw.rejected")
		return ErrNonPositiveAmount
	}
	if a.balance.Sub(amount).LessThan(a.overdraftLimit.Neg()) {
		log.WithError(ErrOverdraftLimit).Warn("CheckingAccount.Withdraw.denied")
		return ErrOverdraftLimit
	}

	a.balance = a.balance.Sub(amount)
	a.transactionCount++
	log.Info("CheckingAccount.Withdraw.complete")

	if a.balance.IsNegative() {
		log.WithField("balance", FormatAmount(a.balance)).Info("CheckingAccount.Withdraw.overdraftUsed")
	}
	return nil
}

// ApplyInterest is a no-op: checking accounts earn no interest.
func (a *CheckingAccount) ApplyInterest() decimal.Decimal {
	a.narrator().Info("CheckingAccount.ApplyInterest.noInterest")
	return decimal.Zero
}

// CalculateFees returns monthlyFee + max(0, transactionCount-freeTransactions) * transactionFee.
func (a *CheckingAccount) CalculateFees() decimal.Decimal {
	fees := a.monthlyFee
	if a.transactionCount > a.freeTransactions {
		excess := decimal.NewFromInt(int64(a.transactionCount - a.freeTransactions))
		fees = fees.Add(excess.Mul(a.transactionFee))
	}
	return fees
}

// ProcessEndOfMonth charges the cycle's fees and then resets the transaction
// counter. Fees are charged even when they push the balance past the overdraft
// limit. It returns the amount charged.
func (a *CheckingAccount) ProcessEndOfMonth() decimal.Decimal {
	charged := decimal.Zero
	fees := a.CalculateFees()
	if fees.IsPositive() {
		a.balance = a.balance.Sub(fees)
		charged = fees
		a.narrator().WithField("fees", FormatAmount(fees)).Info("CheckingAccount.ProcessEndOfMonth.feesApplied")
	}
	a.resetTransactionCount()
	return charged
}

func (a *CheckingAccount) resetTransactionCount() {
	a.transactionCount = 0
	a.narrator().Info("CheckingAccount.ProcessEndOfMonth.transactionCountReset")
}

// EndCycle runs ProcessEndOfMonth.
func (a *CheckingAccount) EndCycle() CycleResult {
	return CycleResult{Interest: decimal.Zero, Fees: a.ProcessEndOfMonth()}
}

func (a *CheckingAccount) Describe() logrus.Fields {
	fields := a.baseAccount.Describe()
	fields["overdraftLimit"] = FormatAmount(a.overdraftLimit)
	fields["monthlyFee"] = FormatAmount(a.monthlyFee)
	fields["transactionCount"] = a.transactionCount
	fields["freeTransactions"] = a.freeTransactions
	fields["transactionFee"] = FormatAmount(a.transactionFee)
	return fields
}

// Package ledger records account operations as immutable transactions.
//
// The Execute functions perform an account operation and produce the matching
// record(s). A record is only produced when the operation succeeded.
package ledger

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/bank"
)

// TransactionType is the kind of ledger event a transaction records.
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
)

var referencePrefixes = map[TransactionType]string{
	TransactionTypeDeposit:     "DEP_",
	TransactionTypeWithdrawal:  "WD_",
	TransactionTypeTransferOut: "TR_WD_",
	TransactionTypeTransferIn:  "TR_DP_",
}

var now = time.Now

// Transaction is one recorded ledger event. It cannot be changed once created.
type Transaction struct {
	id              uuid.UUID
	correlationID   uuid.UUID
	accountNumber   string
	transactionType TransactionType
	amount          decimal.Decimal
	transactionDate time.Time
	description     string
}

func (t *Transaction) ID() uuid.UUID {
	return t.id
}

// CorrelationID links the records produced by one operation. Both legs of a
// transfer share it; for deposits and withdrawals it equals ID.
func (t *Transaction) CorrelationID() uuid.UUID {
	return t.correlationID
}

// Reference is a readable identifier: a type prefix followed by the correlation id.
func (t *Transaction) Reference() string {
	return referencePrefixes[t.transactionType] + t.correlationID.String()
}

func (t *Transaction) AccountNumber() string {
	return t.accountNumber
}

func (t *Transaction) Type() TransactionType {
	return t.transactionType
}

func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t *Transaction) Date() time.Time {
	return t.transactionDate
}

func (t *Transaction) Description() string {
	return t.description
}

// Summary renders "<date> | <type> | Rs.<amount> | <description>".
func (t *Transaction) Summary() string {
	return fmt.Sprintf("%s | %s | %s | %s",
		t.transactionDate.Format(time.RFC3339), t.transactionType, bank.FormatAmount(t.amount), t.description)
}

// ExecuteDeposit deposits amount into account and returns the DEPOSIT record.
func ExecuteDeposit(account bank.Account, amount decimal.Decimal, description string) (*Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("deposit: %w", bank.ErrNonPositiveAmount)
	}
	if err := account.Deposit(amount); err != nil {
		return nil, fmt.Errorf("deposit to %s: %w", account.Number(), err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &Transaction{
		id:              id,
		correlationID:   id,
		accountNumber:   account.Number(),
		transactionType: TransactionTypeDeposit,
		amount:          amount,
		transactionDate: now(),
		description:     description,
	}, nil
}

// ExecuteWithdrawal withdraws amount from account and returns the WITHDRAWAL record.
// A withdrawal the account refuses produces no record.
func ExecuteWithdrawal(account bank.Account, amount decimal.Decimal, description string) (*Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("withdrawal: %w", bank.ErrNonPositiveAmount)
	}
	if err := account.Withdraw(amount); err != nil {
		return nil, fmt.Errorf("withdrawal from %s: %w", account.Number(), err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &Transaction{
		id:              id,
		correlationID:   id,
		accountNumber:   account.Number(),
		transactionType: TransactionTypeWithdrawal,
		amount:          amount,
		transactionDate: now(),
		description:     description,
	}, nil
}

// ExecuteTransfer transfers amount between the accounts and returns the
// TRANSFER_OUT and TRANSFER_IN records, in that order.
func ExecuteTransfer(from, to bank.Account, amount decimal.Decimal, description string) ([]*Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("transfer: %w", bank.ErrNonPositiveAmount)
	}
	if err := bank.Transfer(from, to, amount); err != nil {
		return nil, fmt.Errorf("transfer from %s to %s: %w", from.Number(), to.Number(), err)
	}

	correlationID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	inID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	date := now()

	out := &Transaction{
		id:              correlationID,
		correlationID:   correlationID,
		accountNumber:   from.Number(),
		transactionType: TransactionTypeTransferOut,
		amount:          amount,
		transactionDate: date,
		description:     description,
	}
	in := &Transaction{
		id:              inID,
		correlationID:   correlationID,
		accountNumber:   to.Number(),
		transactionType: TransactionTypeTransferIn,
		amount:          amount,
		transactionDate: date,
		description:     description,
	}
	return []*Transaction{out, in}, nil
}

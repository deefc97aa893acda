package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/ledger"
)

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID              uuid.UUID
	CorrelationID   uuid.UUID
	Reference       string
	AccountNumber   string
	Type            ledger.TransactionType
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
	Summary         string
}

// Movement is a deposit or withdrawal request against one account.
type Movement struct {
	AccountNumber string
	Amount        decimal.Decimal
	Description   string
}

// MovementResult is the recorded transaction and the account balance after it.
type MovementResult struct {
	Transaction Transaction
	Balance     decimal.Decimal
}

type TransferRequest struct {
	FromAccountNumber string
	ToAccountNumber   string
	Amount            decimal.Decimal
	Description       string
}

type TransferResult struct {
	Out         Transaction
	In          Transaction
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

// TransactionCursor identifies a position in a paginated result set.
// AccountNumber carries the filter so subsequent pages stay consistent;
// empty means every account.
type TransactionCursor struct {
	Position      int
	Limit         int
	AccountNumber string
}

func transactionFromLedger(tx *ledger.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID(),
		CorrelationID:   tx.CorrelationID(),
		Reference:       tx.Reference(),
		AccountNumber:   tx.AccountNumber(),
		Type:            tx.Type(),
		Amount:          tx.Amount(),
		TransactionDate: tx.Date(),
		Description:     tx.Description(),
		Summary:         tx.Summary(),
	}
}

package transaction

import (
	"time"

	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	CorrelationID   string `json:"correlationID" doc:"Shared by both records of a transfer"`
	Reference       string `json:"reference" doc:"Readable reference, e.g. TR_WD_<uuid>"`
	AccountNumber   string `json:"accountNumber" doc:"Account the transaction was recorded against"`
	Type            string `json:"type" enum:"DEPOSIT,WITHDRAWAL,TRANSFER_OUT,TRANSFER_IN" doc:"Transaction type"`
	Amount          string `json:"amount" doc:"Decimal amount, always positive"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	Description     string `json:"description" doc:"Free-text description"`
	Summary         string `json:"summary" doc:"One-line human readable summary"`
}

func toAPITransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		CorrelationID:   tx.CorrelationID.String(),
		Reference:       tx.Reference,
		AccountNumber:   tx.AccountNumber,
		Type:            string(tx.Type),
		Amount:          apierror.Money(tx.Amount),
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		Description:     tx.Description,
		Summary:         tx.Summary,
	}
}

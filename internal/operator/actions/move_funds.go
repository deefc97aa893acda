package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/metrics"
	"github.com/carson-networks/bank-server/internal/storage"
)

type Deposit struct {
	AccountNumber string
	Amount        decimal.Decimal
	Description   string

	Transaction *ledger.Transaction
	Balance     decimal.Decimal
}

func (d *Deposit) Name() string {
	return "Deposit"
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.FindAccount(d.AccountNumber)
	if err != nil {
		return err
	}

	tx, err := ledger.ExecuteDeposit(account, d.Amount, d.Description)
	if err != nil {
		return err
	}
	record(writer, tx)

	d.Transaction = tx
	d.Balance = account.Balance()
	return nil
}

type Withdraw struct {
	AccountNumber string
	Amount        decimal.Decimal
	Description   string

	Transaction *ledger.Transaction
	Balance     decimal.Decimal
}

func (w *Withdraw) Name() string {
	return "Withdraw"
}

func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.FindAccount(w.AccountNumber)
	if err != nil {
		return err
	}

	tx, err := ledger.ExecuteWithdrawal(account, w.Amount, w.Description)
	if err != nil {
		return err
	}
	record(writer, tx)

	w.Transaction = tx
	w.Balance = account.Balance()
	return nil
}

type Transfer struct {
	FromAccountNumber string
	ToAccountNumber   string
	Amount            decimal.Decimal
	Description       string

	// Transactions holds the TRANSFER_OUT and TRANSFER_IN records, in that order.
	Transactions []*ledger.Transaction
	FromBalance  decimal.Decimal
	ToBalance    decimal.Decimal
}

func (t *Transfer) Name() string {
	return "Transfer"
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	from, err := writer.FindAccount(t.FromAccountNumber)
	if err != nil {
		return err
	}
	to, err := writer.FindAccount(t.ToAccountNumber)
	if err != nil {
		return err
	}

	txs, err := ledger.ExecuteTransfer(from, to, t.Amount, t.Description)
	if err != nil {
		return err
	}
	record(writer, txs...)

	t.Transactions = txs
	t.FromBalance = from.Balance()
	t.ToBalance = to.Balance()
	return nil
}

func record(writer *storage.Writer, txs ...*ledger.Transaction) {
	writer.RecordTransactions(txs...)
	for _, tx := range txs {
		metrics.RecordTransaction(string(tx.Type()), tx.Amount())
	}
}

package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/metrics"
	"github.com/carson-networks/bank-server/internal/registry"
	"github.com/carson-networks/bank-server/internal/storage"
)

// EndOfMonth runs end-of-cycle processing across every account.
type EndOfMonth struct {
	Reports []registry.CycleReport
}

func (e *EndOfMonth) Name() string {
	return "EndOfMonth"
}

func (e *EndOfMonth) Perform(ctx context.Context, writer *storage.Writer) error {
	e.Reports = writer.ProcessEndOfMonth()

	interest, fees := decimal.Zero, decimal.Zero
	for _, report := range e.Reports {
		interest = interest.Add(report.Interest)
		fees = fees.Add(report.Fees)
	}
	metrics.RecordEndOfMonth(interest, fees)
	return nil
}

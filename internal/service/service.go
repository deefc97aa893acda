package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/storage"
)

// actionProcessor runs mutations one at a time. Satisfied by operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
}

// NewService creates a new Service. Reads go straight to storage; writes are
// handed to the processor.
func NewService(store *storage.Storage, processor actionProcessor, logger logrus.FieldLogger) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Account:     NewAccountService(store, processor, logger),
	}
}

// page slices items[offset:offset+limit] and returns the next position, or -1
// on the last page.
func page[T any](items []T, offset, limit int) ([]T, int) {
	if offset >= len(items) {
		return nil, -1
	}
	end := offset + limit
	if end >= len(items) {
		return items[offset:], -1
	}
	return items[offset:end], end
}

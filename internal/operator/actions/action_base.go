package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-server/internal/storage"
)

var (
	ErrAccountExists      = errors.New("account number already in use")
	ErrUnknownAccountType = errors.New("unknown account type")
)

// IAction is one unit of work performed while holding the registry writer.
// Results are copied onto the action before Perform returns.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}

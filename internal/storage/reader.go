package storage

import (
	"sync"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/registry"
)

// Reader is read-only access to the registry while the shared lock is held.
// Accounts it returns must not be retained after Close.
type Reader struct {
	registry *registry.Registry
	release  func()
	once     sync.Once
}

func newReader(reg *registry.Registry, release func()) *Reader {
	return &Reader{registry: reg, release: release}
}

func (r *Reader) FindAccount(accountNumber string) (bank.Account, error) {
	return r.registry.FindAccount(accountNumber)
}

func (r *Reader) Accounts() []bank.Account {
	return r.registry.Accounts()
}

func (r *Reader) Transactions() []*ledger.Transaction {
	return r.registry.Transactions()
}

func (r *Reader) TransactionsFor(accountNumber string) []*ledger.Transaction {
	return r.registry.TransactionsFor(accountNumber)
}

// Close releases the shared lock. Calling it more than once is harmless.
func (r *Reader) Close() {
	r.once.Do(r.release)
}

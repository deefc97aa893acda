package storage

import (
	"sync"

	"github.com/carson-networks/bank-server/internal/registry"
)

// Writer is exclusive access to the registry. Every registry operation,
// including account mutation, is available through the embedded Registry.
type Writer struct {
	*registry.Registry
	release func()
	once    sync.Once
}

func newWriter(reg *registry.Registry, release func()) *Writer {
	return &Writer{Registry: reg, release: release}
}

// Close releases the exclusive lock. Calling it more than once is harmless.
func (w *Writer) Close() {
	w.once.Do(w.release)
}

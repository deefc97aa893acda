package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/storage"
)

var ErrStopped = errors.New("operator is stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    *storage.Storage
	queue      chan ActionItem
	numWorkers int
	logger     logrus.FieldLogger
	wg         sync.WaitGroup
	stopOnce   sync.Once

	// mu keeps Stop from closing the queue under a sender.
	mu      sync.RWMutex
	stopped atomic.Bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers, queueSize int, logger logrus.FieldLogger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
		logger:     logger,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.logger.WithField("worker", i))
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
	d.logger.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start")
}

// Stop closes the queue and waits for queued actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped.Store(true)
		close(d.queue)
		d.mu.Unlock()

		d.wg.Wait()
		d.logger.Info("OperatorDelegator.Stop")
	})
}

// Stopped reports whether Stop has been called.
func (d *OperatorDelegator) Stopped() bool {
	return d.stopped.Load()
}

// Process queues the action and blocks until it has been performed or ctx is done.
// Once a worker has claimed the action, Process waits for its outcome even if
// ctx ends, so the returned error always says whether the action ran.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	item := newActionItem(ctx, action)

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-item.response:
		return resp.err
	case <-ctx.Done():
		if item.abandon() {
			return ctx.Err()
		}
		resp := <-item.response
		return resp.err
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped.Load() {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

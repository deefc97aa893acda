package operator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/metrics"
	"github.com/carson-networks/bank-server/internal/operator/actions"
	"github.com/carson-networks/bank-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  logrus.FieldLogger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger logrus.FieldLogger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	name := item.action.Name()
	log := o.logger.WithField("action", name)

	if !item.claim() {
		log.Debug("Operator.processItem.skipped")
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		log.WithError(err).Warn("Operator.processItem.abandoned")
		item.response <- ActionItemResponse{err: err}
		return
	}

	start := time.Now()
	err = item.action.Perform(item.ctx, writer)
	writer.Close()
	elapsed := time.Since(start)

	metrics.RecordAction(name, err, elapsed.Seconds())
	log = log.WithField("durationMicros", elapsed.Microseconds())
	if err != nil {
		log.WithError(err).Info("Operator.processItem.rejected")
	} else {
		log.Debug("Operator.processItem.complete")
	}

	item.response <- ActionItemResponse{err: err}
}

const (
	itemPending int32 = iota
	itemClaimed
	itemAbandoned
)

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
	state    *atomic.Int32
}

func newActionItem(ctx context.Context, action actions.IAction) ActionItem {
	return ActionItem{
		ctx:      ctx,
		action:   action,
		response: make(chan ActionItemResponse, 1),
		state:    new(atomic.Int32),
	}
}

// claim marks the item as taken by a worker. It fails if the caller already gave up.
func (i ActionItem) claim() bool {
	return i.state.CompareAndSwap(itemPending, itemClaimed)
}

// abandon marks the item as given up by the caller. It fails once a worker owns it.
func (i ActionItem) abandon() bool {
	return i.state.CompareAndSwap(itemPending, itemAbandoned)
}

type ActionItemResponse struct {
	err error
}

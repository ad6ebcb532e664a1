package ledgerqueue

import (
	"context"
	"log/slog"
	"sync"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/usecase/shared"
)

// MemoryQueue is a bounded in-process queue drained by a fixed worker pool.
// Requests still buffered when the process dies are lost; reconcile repairs the counters.
type MemoryQueue struct {
	items    chan shared.IssuanceRequest
	workers  int
	deliver  *deliverer
	metrics  *metrics.Metrics
	logger   *slog.Logger
	workerWG sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	// ctx aborts retry backoff when Stop runs out of time.
	ctx    context.Context
	cancel context.CancelFunc
}

func NewMemoryQueue(appender Appender, cfg config.LedgerConfig, m *metrics.Metrics, logger *slog.Logger) *MemoryQueue {
	ctx, cancel := context.WithCancel(context.Background())
	return &MemoryQueue{
		items:   make(chan shared.IssuanceRequest, cfg.QueueSize),
		workers: cfg.Workers,
		deliver: newDeliverer(appender, cfg, m, logger),
		metrics: m,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (q *MemoryQueue) Start() {
	for i := 0; i < q.workers; i++ {
		q.workerWG.Add(1)
		go q.work()
	}
	q.logger.Info("ledger queue started", "driver", config.LedgerDriverMemory, "workers", q.workers, "capacity", cap(q.items))
}

// Enqueue never blocks: a full buffer returns ErrQueueFull.
func (q *MemoryQueue) Enqueue(_ context.Context, req shared.IssuanceRequest) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- req:
		q.metrics.SetQueueDepth(len(q.items))
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes intake and waits for the workers to drain the buffer.
// When ctx ends first, pending retries are abandoned and ctx.Err() is returned.
func (q *MemoryQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.items)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.workerWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.cancel()
		q.logger.Info("ledger queue drained")
		return nil
	case <-ctx.Done():
		q.cancel()
		pending := len(q.items)
		<-done
		q.logger.Warn("ledger queue stopped before drain completed", "pending", pending)
		return ctx.Err()
	}
}

func (q *MemoryQueue) Len() int {
	return len(q.items)
}

func (q *MemoryQueue) work() {
	defer q.workerWG.Done()
	for req := range q.items {
		q.metrics.SetQueueDepth(len(q.items))
		q.deliver.deliver(q.ctx, req)
	}
}

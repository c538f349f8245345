package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"go.uber.org/zap"
)

// ErrQueueFull is returned when the dispatch queue cannot take another alert
var ErrQueueFull = errors.New("sos dispatch queue is full")

// ErrQueueStopped is returned after Stop
var ErrQueueStopped = errors.New("sos dispatch queue is stopped")

// QueueStats tracks dispatch queue activity
type QueueStats struct {
	Enqueued      int64         `json:"enqueued"`
	Processed     int64         `json:"processed"`
	Failed        int64         `json:"failed"`
	AverageTime   time.Duration `json:"average_time"`
	QueueSize     int           `json:"queue_size"`
	ActiveWorkers int           `json:"active_workers"`
}

// DispatchQueue hands SOS alerts to a pool of workers that forward them to
// the wrapped dispatcher. SendSOS returns once the alert is queued, so a slow
// responder never holds the session.
type DispatchQueue struct {
	next    SOSDispatcher
	queue   chan models.SOSAlert
	workers int
	timeout time.Duration
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *zap.Logger

	mu      sync.RWMutex
	stats   QueueStats
	stopped bool
}

// NewDispatchQueue starts workers goroutines draining a queue of queueSize
// alerts into next. Each forward is bounded by timeout.
func NewDispatchQueue(next SOSDispatcher, workers, queueSize int, timeout time.Duration) *DispatchQueue {
	if workers <= 0 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())

	q := &DispatchQueue{
		next:    next,
		queue:   make(chan models.SOSAlert, queueSize),
		workers: workers,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		logger:  logging.Logger.Named("sos_queue"),
	}

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

func (q *DispatchQueue) worker(id int) {
	defer q.wg.Done()

	for alert := range q.queue {
		q.process(alert, id)
	}
}

func (q *DispatchQueue) process(alert models.SOSAlert, workerID int) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(q.ctx, q.timeout)
	defer cancel()

	err := q.next.SendSOS(ctx, alert)
	elapsed := time.Since(start)

	q.mu.Lock()
	q.stats.Processed++
	if err != nil {
		q.stats.Failed++
	}
	if q.stats.AverageTime == 0 {
		q.stats.AverageTime = elapsed
	} else {
		// Simple moving average
		q.stats.AverageTime = (q.stats.AverageTime + elapsed) / 2
	}
	q.mu.Unlock()

	if err != nil {
		observability.SOSDispatches.WithLabelValues("error").Inc()
		q.logger.Error("sos dispatch failed",
			zap.Int("worker_id", workerID),
			zap.String("session_id", alert.SessionID),
			zap.Error(err))
	}
}

// SendSOS queues alert for delivery
func (q *DispatchQueue) SendSOS(ctx context.Context, alert models.SOSAlert) error {
	if alert.RaisedAt.IsZero() {
		alert.RaisedAt = time.Now().UTC()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return ErrQueueStopped
	}

	select {
	case q.queue <- alert:
		q.stats.Enqueued++
		observability.SOSDispatches.WithLabelValues("queued").Inc()
		return nil
	default:
		q.logger.Warn("sos dispatch queue full", zap.String("session_id", alert.SessionID))
		return ErrQueueFull
	}
}

// Stats returns the current processing statistics
func (q *DispatchQueue) Stats() QueueStats {
	q.mu.RLock()
	defer q.mu.RUnlock()

	stats := q.stats
	stats.QueueSize = len(q.queue)
	stats.ActiveWorkers = q.workers
	return stats
}

// IsHealthy reports whether the queue still has room and is being drained
func (q *DispatchQueue) IsHealthy() bool {
	stats := q.Stats()
	if stats.QueueSize >= cap(q.queue) && cap(q.queue) > 0 {
		return false
	}
	return !(stats.Processed == 0 && stats.Enqueued > int64(q.workers))
}

// Stop delivers the queued alerts and waits for the workers to exit
func (q *DispatchQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	close(q.queue)
	q.mu.Unlock()

	q.wg.Wait()
	q.cancel()
}

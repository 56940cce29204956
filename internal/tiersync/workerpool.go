package tiersync

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddJob(ctx context.Context, job ReconcileJob) error
	Close()
}

type ReconcileJob func() error

type WorkerPool struct {
	pool chan ReconcileJob
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan ReconcileJob, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for job := range wp.pool {
		if err := job(); err != nil {
			zap.L().Error("Reconcile job failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddJob(ctx context.Context, job ReconcileJob) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- job:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}

package notify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrPoolClosed = errors.New("worker pool is closed")
	ErrQueueFull  = errors.New("worker pool queue is full")
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	pool   chan Task
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
	closed sync.RWMutex
}

// NewWorkerPool starts size workers reading from a queue of queueSize tasks.
func NewWorkerPool(size, queueSize int) *WorkerPool {
	wp := &WorkerPool{
		pool: make(chan Task, queueSize),
		done: make(chan struct{}),
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

// AddTask queues task without waiting. A full queue is reported as ErrQueueFull.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.closed.RLock()
	defer wp.closed.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-wp.done:
		return ErrPoolClosed
	default:
	}

	select {
	case wp.pool <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks and waits until the queued ones are finished.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.done)
		wp.closed.Lock()
		close(wp.pool)
		wp.closed.Unlock()
	})
	wp.wg.Wait()
}

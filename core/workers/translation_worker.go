// ABOUTME: Translation worker runs translation units on a bounded pool of goroutines
// ABOUTME: Batches fan out across the pool and come back in request order

package workers

import (
	"context"
	"sync"
	"time"

	"poi-translation-api/core/domain"
	"poi-translation-api/core/interfaces"
)

// submitTimeout is how long Submit waits for room in the queue
const submitTimeout = 5 * time.Second

// TranslationJob is one translation unit queued for a worker
type TranslationJob struct {
	Index    int
	Request  domain.TranslationRequest
	Context  context.Context
	ResultCh chan<- JobResult
}

// JobResult carries the outcome of a TranslationJob
type JobResult struct {
	Index  int
	Result *domain.TranslationResult
	Err    error
}

// TranslationWorker manages a pool of translation goroutines
type TranslationWorker struct {
	translator interfaces.Translator
	logger     interfaces.Logger
	jobQueue   chan *TranslationJob
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// WorkerConfig holds configuration for the translation worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
		QueueSize:  100,
	}
}

// NewTranslationWorker creates a new translation worker
func NewTranslationWorker(translator interfaces.Translator, logger interfaces.Logger, config WorkerConfig) *TranslationWorker {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}
	if logger == nil {
		logger = interfaces.NoopLogger{}
	}

	return &TranslationWorker{
		translator: translator,
		logger:     logger,
		jobQueue:   make(chan *TranslationJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
	}
}

// Start starts the worker pool
func (tw *TranslationWorker) Start() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.running {
		return nil
	}

	tw.ctx, tw.cancel = context.WithCancel(context.Background())
	for i := 0; i < tw.maxWorkers; i++ {
		tw.wg.Add(1)
		go tw.run(tw.ctx)
	}

	tw.running = true
	tw.logger.Info("Translation worker started", map[string]interface{}{
		"workers": tw.maxWorkers,
	})
	return nil
}

// Stop stops the worker pool and waits for in-flight jobs to return.
// Jobs still queued are dropped; their batches see ErrWorkerStopped.
func (tw *TranslationWorker) Stop() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.running {
		return nil
	}

	tw.cancel()
	tw.wg.Wait()

	tw.running = false
	tw.logger.Info("Translation worker stopped", nil)
	return nil
}

// Running reports whether the pool accepts jobs
func (tw *TranslationWorker) Running() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.running
}

// Submit queues a job, waiting up to five seconds for space
func (tw *TranslationWorker) Submit(job *TranslationJob) error {
	tw.mu.Lock()
	if !tw.running {
		tw.mu.Unlock()
		return ErrWorkerNotRunning
	}
	done := tw.ctx.Done()
	tw.mu.Unlock()

	timer := time.NewTimer(submitTimeout)
	defer timer.Stop()

	select {
	case tw.jobQueue <- job:
		return nil
	case <-done:
		return ErrWorkerStopped
	case <-timer.C:
		return ErrQueueFull
	}
}

// TranslateBatch translates every request on the pool and returns the results
// in request order. A failed unit leaves a nil result and its error in errs.
func (tw *TranslationWorker) TranslateBatch(ctx context.Context, requests []domain.TranslationRequest) ([]*domain.TranslationResult, []error) {
	results := make([]*domain.TranslationResult, len(requests))
	errs := make([]error, len(requests))
	if len(requests) == 0 {
		return results, errs
	}

	tw.mu.Lock()
	var stopped <-chan struct{}
	if tw.ctx != nil {
		stopped = tw.ctx.Done()
	}
	tw.mu.Unlock()

	resultCh := make(chan JobResult, len(requests))
	pending := 0
	for i, req := range requests {
		job := &TranslationJob{Index: i, Request: req, Context: ctx, ResultCh: resultCh}
		if err := tw.Submit(job); err != nil {
			errs[i] = err
			continue
		}
		pending++
	}

	for pending > 0 {
		select {
		case r := <-resultCh:
			results[r.Index] = r.Result
			errs[r.Index] = r.Err
			pending--
		case <-ctx.Done():
			fillMissing(results, errs, ctx.Err())
			return results, errs
		case <-stopped:
			fillMissing(results, errs, ErrWorkerStopped)
			return results, errs
		}
	}
	return results, errs
}

func fillMissing(results []*domain.TranslationResult, errs []error, err error) {
	for i := range results {
		if results[i] == nil && errs[i] == nil {
			errs[i] = err
		}
	}
}

// run is the main loop for each worker
func (tw *TranslationWorker) run(ctx context.Context) {
	defer tw.wg.Done()

	for {
		select {
		case job := <-tw.jobQueue:
			tw.process(job)
		case <-ctx.Done():
			return
		}
	}
}

func (tw *TranslationWorker) process(job *TranslationJob) {
	jobCtx := job.Context
	if jobCtx == nil {
		jobCtx = context.Background()
	}

	var out JobResult
	out.Index = job.Index
	if err := jobCtx.Err(); err != nil {
		out.Err = err
	} else {
		out.Result, out.Err = tw.translator.Translate(jobCtx, job.Request)
	}

	if out.Err != nil {
		tw.logger.Warn("Batch translation unit failed", map[string]interface{}{
			"poi":   job.Request.POIName,
			"index": job.Index,
			"error": out.Err.Error(),
		})
	}

	if job.ResultCh != nil {
		select {
		case job.ResultCh <- out:
		case <-jobCtx.Done():
		}
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrWorkerStopped    = &WorkerError{Message: "worker pool stopped"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}

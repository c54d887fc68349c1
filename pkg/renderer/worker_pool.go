package renderer

import (
	"context"
	"runtime"
	"sync"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row int
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row     int
	Stats   RowStats
	Skipped bool // Row was not rendered because the render was stopped
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxRows bounds the number of tasks that may be queued at once.
func NewWorkerPool(raytracer *Raytracer, maxRows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxRows),   // Buffer for all rows
		resultQueue: make(chan RowResult, maxRows), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Workers skip remaining rows once ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			w.resultQueue <- RowResult{Row: task.Row, Skipped: true}
			continue
		}

		// Each row writes a disjoint slice of the image plane
		stats := w.raytracer.RenderRow(task.Row)
		w.resultQueue <- RowResult{Row: task.Row, Stats: stats}
	}
}

// renderParallel renders every row through a worker pool. Rows are presented on
// the display by the calling goroutine as they complete.
func (rt *Raytracer) renderParallel(ctx context.Context, numWorkers int) (RenderStats, error) {
	height := rt.camera.Height()

	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(rt, height, numWorkers)
	pool.Start(renderCtx)
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Row: y})
	}

	var stats RenderStats
	for received := 0; received < height; received++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Skipped {
			stats.Cancelled = true
			continue
		}

		stats.AddRow(result.Stats)
		if !stats.Cancelled && !rt.presentRow(result.Row) {
			stats.Cancelled = true
			cancel()
		}
	}
	pool.Stop()

	if err := ctx.Err(); err != nil {
		stats.Cancelled = true
		return stats, err
	}
	return stats, nil
}

package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// Worker runs the catch-up pass on a cron schedule.
type Worker struct {
	process *ProcessDueTemplatesUseCase
	clock   adapter.Clock
	spec    string
	timeout time.Duration

	cron    *cron.Cron
	running sync.Mutex
}

// NewWorker creates a Worker. spec is a standard cron expression such as
// "0 * * * *", or a descriptor such as "@every 1h".
func NewWorker(process *ProcessDueTemplatesUseCase, clock adapter.Clock, spec string, timeout time.Duration) *Worker {
	return &Worker{
		process: process,
		clock:   clock,
		spec:    spec,
		timeout: timeout,
	}
}

// Start schedules the pass and, when runNow is set, runs it once immediately.
func (w *Worker) Start(runNow bool) error {
	w.cron = cron.New(cron.WithLocation(time.UTC))
	if _, err := w.cron.AddFunc(w.spec, w.Run); err != nil {
		return fmt.Errorf("invalid scheduler spec %q: %w", w.spec, err)
	}

	if runNow {
		w.Run()
	}

	w.cron.Start()
	slog.Info("Recurring scheduler started", "spec", w.spec)

	return nil
}

// Stop halts the schedule. A pass already running completes.
func (w *Worker) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
	w.running.Lock()
	defer w.running.Unlock()

	slog.Info("Recurring scheduler stopped")
}

// Run executes one catch-up pass. Overlapping runs are skipped.
func (w *Worker) Run() {
	if !w.running.TryLock() {
		slog.Warn("Recurring scheduler pass still running, skipping")
		return
	}
	defer w.running.Unlock()

	ctx := context.Background()
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	if _, err := w.process.Execute(ctx, ProcessDueTemplatesInput{Now: w.clock.Now()}); err != nil {
		slog.Error("Recurring scheduler pass failed", "error", err)
	}
}

package justify

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/risk"
	"bazaar/internal/risk/ports"
)

// generationTimeout bounds one narrative generation plus its write-back.
const generationTimeout = 30 * time.Second

// Worker consumes justification jobs from a bounded queue, generates the
// narrative, and attaches it to the persisted assessment. Dispatch never
// blocks the request path: when the queue is full the job is dropped and
// the assessment simply keeps a null narrative.
type Worker struct {
	queue  chan risk.JustificationJob
	gen    Generator
	store  ports.AssessmentStore
	logger *slog.Logger
}

func NewWorker(gen Generator, store ports.AssessmentStore, queueSize int, logger *slog.Logger) *Worker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Worker{
		queue:  make(chan risk.JustificationJob, queueSize),
		gen:    gen,
		store:  store,
		logger: logger,
	}
}

// Dispatch enqueues a job without blocking. Returns false when the queue is
// full and the job was dropped.
func (w *Worker) Dispatch(job risk.JustificationJob) bool {
	select {
	case w.queue <- job:
		return true
	default:
		return false
	}
}

// Run processes jobs until the context is cancelled. Generation and
// write-back failures are logged and the worker moves on; nothing here can
// affect a payment response.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-w.queue:
			w.process(ctx, job)
		}
	}
}

func (w *Worker) process(ctx context.Context, job risk.JustificationJob) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	narrative, err := w.gen.Narrative(ctx, job)
	if err != nil {
		w.logger.ErrorContext(ctx, "justification generation failed",
			"assessment_id", job.AssessmentID,
			"error", err,
		)
		return
	}

	if err := w.store.AttachJustification(ctx, job.AssessmentID, narrative, time.Now().UTC()); err != nil {
		w.logger.ErrorContext(ctx, "justification write-back failed",
			"assessment_id", job.AssessmentID,
			"error", err,
		)
		return
	}

	w.logger.DebugContext(ctx, "justification attached",
		"assessment_id", job.AssessmentID,
	)
}

package leaderboard

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

// DefaultSubmitTimeout bounds one background submission.
const DefaultSubmitTimeout = 5 * time.Second

// Outcome is the result of one background submission.
type Outcome struct {
	Name  string
	Score int
	Err   error
}

// Reporter submits final scores in the background. It satisfies the
// simulation's score sink: SubmitScore returns at once and failures are
// logged and published as outcomes, never returned to the caller.
type Reporter struct {
	client   Client
	log      *log.Logger
	timeout  time.Duration
	outcomes chan Outcome
	wg       sync.WaitGroup
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithTimeout sets the per-submission deadline.
func WithTimeout(d time.Duration) ReporterOption {
	return func(r *Reporter) { r.timeout = d }
}

// WithReporterLogger sets the logger for submission failures.
func WithReporterLogger(l *log.Logger) ReporterOption {
	return func(r *Reporter) { r.log = l }
}

// NewReporter creates a reporter for client.
func NewReporter(client Client, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		client:   client,
		log:      log.Default(),
		timeout:  DefaultSubmitTimeout,
		outcomes: make(chan Outcome, 8),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SubmitScore starts a background submission and returns immediately.
func (r *Reporter) SubmitScore(name string, score int) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		err := r.client.SubmitScore(ctx, name, score)
		if err != nil {
			r.log.Warn("score submission failed", "name", name, "score", score, "err", err)
		} else {
			r.log.Debug("score submitted", "name", name, "score", score)
		}
		r.publish(Outcome{Name: name, Score: score, Err: err})
	}()
}

// publish never blocks; if nobody drains the channel, outcomes are dropped.
func (r *Reporter) publish(o Outcome) {
	select {
	case r.outcomes <- o:
	default:
		r.log.Debug("dropping submission outcome", "name", o.Name)
	}
}

// Outcomes delivers the result of every submission.
func (r *Reporter) Outcomes() <-chan Outcome {
	return r.outcomes
}

// Ensure Reporter implements runner.ScoreSink
var _ runner.ScoreSink = (*Reporter)(nil)

// Wait blocks until every in-flight submission has finished.
func (r *Reporter) Wait() {
	r.wg.Wait()
}

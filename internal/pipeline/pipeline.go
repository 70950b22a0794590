// Package pipeline provides a sequential runner for multi-step flows. Steps
// run in order with single-attempt semantics: the first failure
// short-circuits the flow and no later step runs. There is no retry and no
// compensation.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Step is one fallible stage of a flow.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Observer receives the outcome of each executed stage. Implementations
// must be safe for concurrent use.
type Observer interface {
	ObserveStage(flow, stage, status string, duration time.Duration)
}

// Runner executes flows of ordered steps.
type Runner struct {
	logger   *zap.Logger
	observer Observer
}

// NewRunner creates a runner. observer may be nil.
func NewRunner(logger *zap.Logger, observer Observer) *Runner {
	return &Runner{logger: logger, observer: observer}
}

// Execute runs the steps in order, stopping at the first failure. The
// returned error wraps the failing step's error, so sentinel checks with
// errors.Is keep working.
func (r *Runner) Execute(ctx context.Context, flow string, steps []Step) error {
	for _, step := range steps {
		start := time.Now()

		r.logger.Debug("Running step",
			zap.String("flow", flow),
			zap.String("step", step.Name))

		if err := step.Run(ctx); err != nil {
			r.observe(flow, step.Name, "failure", time.Since(start))
			r.logger.Error("Step failed",
				zap.String("flow", flow),
				zap.String("step", step.Name),
				zap.Error(err))
			return fmt.Errorf("%s: %w", step.Name, err)
		}

		r.observe(flow, step.Name, "success", time.Since(start))
		r.logger.Debug("Step completed",
			zap.String("flow", flow),
			zap.String("step", step.Name),
			zap.Duration("duration", time.Since(start)))
	}
	return nil
}

func (r *Runner) observe(flow, stage, status string, duration time.Duration) {
	if r.observer != nil {
		r.observer.ObserveStage(flow, stage, status, duration)
	}
}

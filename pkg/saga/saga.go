// Package saga runs ordered steps with best-effort compensations.
//
// When a step fails, the compensations of every previously completed step
// run in reverse order on a context detached from the caller's
// cancellation. Compensation failures are logged and never change the
// error returned to the caller, so an orphaned side effect is an accepted
// outcome.
package saga

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is a single unit of work with an optional undo.
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga executes steps in order.
type Saga struct {
	steps  []Step
	logger *slog.Logger
}

// New creates a saga that logs compensation outcomes to logger.
func New(logger *slog.Logger) *Saga {
	return &Saga{logger: logger}
}

// Add appends a step and returns the saga for chaining.
func (s *Saga) Add(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Run executes each step. On the first failure the completed steps are
// compensated in reverse and the failing step's error is returned.
func (s *Saga) Run(ctx context.Context) error {
	done := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		if err := step.Action(ctx); err != nil {
			s.compensate(ctx, done)
			return fmt.Errorf("%s: %w", step.Name, err)
		}
		done = append(done, step)
	}

	return nil
}

func (s *Saga) compensate(ctx context.Context, done []Step) {
	ctx = context.WithoutCancel(ctx)
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.logger.Error("compensation failed", "step", step.Name, "error", err)
			continue
		}
		s.logger.Info("compensation applied", "step", step.Name)
	}
}

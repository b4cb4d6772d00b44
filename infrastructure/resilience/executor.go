// Package resilience provides bounded execution of candidate evaluations using fortify.
package resilience

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
	"github.com/felixgeelhaar/patrol-go/domain/patrol"
)

// EvaluateFunc computes one candidate evaluation.
type EvaluateFunc func(ctx context.Context) (patrol.Evaluation, error)

// Executor caps the number of evaluations running at once.
type Executor struct {
	bulkhead      bulkhead.Bulkhead[patrol.Evaluation]
	maxConcurrent int
	timeout       time.Duration
}

// ExecutorConfig configures the executor.
type ExecutorConfig struct {
	// MaxConcurrent limits concurrent evaluations. Zero or less means one per CPU.
	MaxConcurrent int

	// Timeout bounds a single evaluation. Zero disables the bound.
	Timeout time.Duration
}

// DefaultExecutorConfig returns a configuration sized to the host.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxConcurrent: runtime.NumCPU(),
	}
}

// NewExecutor creates a new executor.
func NewExecutor(config ExecutorConfig) *Executor {
	maxConcurrent := config.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.NumCPU()
	}

	return &Executor{
		bulkhead: bulkhead.New[patrol.Evaluation](bulkhead.Config{
			MaxConcurrent: maxConcurrent,
		}),
		maxConcurrent: maxConcurrent,
		timeout:       config.Timeout,
	}
}

// NewDefaultExecutor creates an executor with default configuration.
func NewDefaultExecutor() *Executor {
	return NewExecutor(DefaultExecutorConfig())
}

// MaxConcurrent reports the concurrency cap.
func (e *Executor) MaxConcurrent() int {
	return e.maxConcurrent
}

// Execute runs fn inside the bulkhead.
// Callers must not hold more than MaxConcurrent calls in flight; the bulkhead
// does not queue.
func (e *Executor) Execute(ctx context.Context, fn EvaluateFunc) (patrol.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return patrol.Evaluation{}, err
	}

	result, err := e.bulkhead.Execute(ctx, func(ctx context.Context) (patrol.Evaluation, error) {
		if e.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.timeout)
			defer cancel()
		}
		return fn(ctx)
	})
	if err != nil {
		return patrol.Evaluation{}, fmt.Errorf("evaluation: %w", err)
	}
	return result, nil
}

// Evaluate runs patrol.Evaluate for start against obstructions inside the bulkhead.
func (e *Executor) Evaluate(ctx context.Context, start grid.AgentState, obstructions grid.Obstructions, bounds grid.Bounds) (patrol.Evaluation, error) {
	return e.Execute(ctx, func(ctx context.Context) (patrol.Evaluation, error) {
		if err := ctx.Err(); err != nil {
			return patrol.Evaluation{}, err
		}
		return patrol.Evaluate(start, obstructions, bounds), nil
	})
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
	"github.com/hearsayhub/hearsay-hub/internal/platform/telemetry"
)

// Writes that span several rows run as Validate → Perform → Verify → Respond:
//
//  1. VALIDATE checks input and referenced rows before anything is written.
//  2. PERFORM writes, normally inside TxManager.RunInTx.
//  3. VERIFY re-reads what was written and checks its invariants.
//  4. RESPOND shapes the verified state for the caller.

// ExecutionStep names a step of an Operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the step that failed. It unwraps to the cause so
// domain sentinels survive for errors.Is.
type ExecutionError struct {
	Operation string
	Step      ExecutionStep
	Cause     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Operation, e.Step, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs Operations with shared logging and tracing.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor; a nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation bundles the steps of one write. Nil steps are skipped; a nil
// Respond returns the zero O.
type Operation[I, P, V, O any] struct {
	Name     string
	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op against input, stopping at the first failing step.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (out O, err error) {
	ctx, span := telemetry.StartSpan(ctx, "app."+op.Name, attribute.String("operation", op.Name))
	defer func() { telemetry.End(span, err) }()

	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = exec.logger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step ExecutionStep, cause error) error {
		level := slog.LevelError
		if step == StepValidate {
			level = slog.LevelWarn
		}

		logger.Log(ctx, level, string(step)+" failed", slog.Any("error", cause))

		return &ExecutionError{Operation: op.Name, Step: step, Cause: cause}
	}

	if op.Validate != nil {
		if err = op.Validate(ctx, input); err != nil {
			return out, fail(StepValidate, err)
		}
	}

	var performed P
	if op.Perform != nil {
		if performed, err = op.Perform(ctx, input); err != nil {
			return out, fail(StepPerform, err)
		}
	}

	var verified V
	if op.Verify != nil {
		if verified, err = op.Verify(ctx, input, performed); err != nil {
			return out, fail(StepVerify, err)
		}
	}

	if op.Respond != nil {
		if out, err = op.Respond(ctx, input, verified); err != nil {
			return out, fail(StepRespond, err)
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}

// FailedStep reports the step an Execute error came from.
func FailedStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}

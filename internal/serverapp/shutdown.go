package serverapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"catalog-graphql/internal/logging"
)

// teardown releases acquired resources in reverse order of acquisition:
// the HTTP server stops accepting work first, then the database closes,
// and the telemetry providers flush last.
type teardown struct {
	steps []teardownStep
}

type teardownStep struct {
	name string
	fn   func(context.Context) error
}

func (t *teardown) add(name string, fn func(context.Context) error) {
	t.steps = append(t.steps, teardownStep{name: name, fn: fn})
}

// unwind runs the steps newest-first and keeps going past failures so one
// stuck resource cannot leak the rest. All failures are reported together.
func (t *teardown) unwind(ctx context.Context, logger *logging.Logger) error {
	var errs []error
	for i := len(t.steps) - 1; i >= 0; i-- {
		step := t.steps[i]
		started := time.Now()
		if err := step.fn(ctx); err != nil {
			if logger != nil {
				logger.Warn("teardown step failed",
					slog.String("step", step.name),
					slog.String("error", err.Error()),
				)
			}
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
			continue
		}
		if logger != nil {
			logger.Debug("teardown step complete",
				slog.String("step", step.name),
				slog.Duration("took", time.Since(started)),
			)
		}
	}
	return errors.Join(errs...)
}

// Shutdown releases all acquired resources and reports any step failures.
// Repeat calls are no-ops.
func (a *App) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	a.shutdownOnce.Do(func() {
		a.stateMu.Lock()
		steps := a.releases
		a.started = false
		a.stateMu.Unlock()

		err = steps.unwind(ctx, a.logger)
	})
	return err
}

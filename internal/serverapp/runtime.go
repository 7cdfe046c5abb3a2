package serverapp

import (
	"fmt"
	"log/slog"
	"os"
)

// Start launches the HTTP listener goroutine. Init must have completed.
// Starting twice is a no-op.
func (a *App) Start() error {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()

	if !a.initialized {
		return fmt.Errorf("app is not initialized")
	}
	if a.started {
		return nil
	}

	a.serverErrors = startServer(a.cfg, a.logger, a.srv, a.serverAddr)
	a.started = true
	return nil
}

// Wait blocks until the process is told to stop or the HTTP listener
// fails. A shutdown signal is a normal stop and returns nil; a listener
// failure is returned as the error. A nil stop channel waits on the
// listener alone.
func (a *App) Wait(stop <-chan os.Signal) error {
	a.stateMu.Lock()
	serverErrors := a.serverErrors
	a.stateMu.Unlock()

	if serverErrors == nil {
		return fmt.Errorf("app is not started")
	}

	select {
	case err := <-serverErrors:
		if err == nil {
			return fmt.Errorf("server stopped unexpectedly")
		}
		return err
	case sig := <-stop:
		a.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		return nil
	}
}

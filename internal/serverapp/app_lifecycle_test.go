package serverapp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"catalog-graphql/internal/config"
	"catalog-graphql/internal/logging"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{Level: "info", Format: "text"})
}

func TestWait_SignalStopsCleanly(t *testing.T) {
	app := &App{logger: testLogger(), serverErrors: make(chan error, 1)}
	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGTERM

	if err := app.Wait(stop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWait_ReturnsListenerFailure(t *testing.T) {
	app := &App{logger: testLogger(), serverErrors: make(chan error, 1)}
	app.serverErrors <- errors.New("boom")
	stop := make(chan os.Signal, 1)

	err := app.Wait(stop)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected listener failure, got %v", err)
	}
}

func TestWait_BeforeStartFails(t *testing.T) {
	app := &App{logger: testLogger()}
	if err := app.Wait(nil); err == nil {
		t.Fatalf("expected error when waiting before start")
	}
}

func TestShutdown_Idempotent(t *testing.T) {
	app := &App{logger: testLogger()}
	var calls int32
	app.releases.add("test", func(context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("first shutdown failed: %v", err)
	}
	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("second shutdown failed: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected teardown to run once, ran %d times", got)
	}
}

func TestShutdown_ReportsStepFailuresAndKeepsUnwinding(t *testing.T) {
	app := &App{logger: testLogger()}
	var dbClosed bool
	app.releases.add("database", func(context.Context) error {
		dbClosed = true
		return nil
	})
	app.releases.add("HTTP server", func(context.Context) error {
		return errors.New("listener stuck")
	})

	err := app.Shutdown(context.Background())
	if err == nil || !strings.Contains(err.Error(), "HTTP server") {
		t.Fatalf("expected HTTP server step failure, got %v", err)
	}
	if !dbClosed {
		t.Fatalf("later steps must still run after an earlier failure")
	}
}

func TestTeardown_UnwindsInReverseOrder(t *testing.T) {
	td := teardown{}
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		td.add(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := td.unwind(context.Background(), testLogger()); err != nil {
		t.Fatalf("unwind failed: %v", err)
	}
	if len(order) != 3 || order[0] != "third" || order[2] != "first" {
		t.Fatalf("expected reverse order, got %v", order)
	}
}

func TestStart_BeforeInitFails(t *testing.T) {
	app := &App{logger: testLogger()}
	if err := app.Start(); err == nil {
		t.Fatalf("expected start to fail before init")
	}
}

func TestStartAndShutdown_HappyPath(t *testing.T) {
	app := &App{
		cfg:        &config.Config{},
		logger:     testLogger(),
		serverAddr: "127.0.0.1:0",
		srv: &http.Server{
			Addr:    "127.0.0.1:0",
			Handler: http.NewServeMux(),
		},
		initialized: true,
	}
	app.releases.add("HTTP server", func(ctx context.Context) error {
		return app.srv.Shutdown(ctx)
	})

	if err := app.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestInitFailure_DoesNotMarkInitialized(t *testing.T) {
	appCfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     1,
			User:     "catalog",
			Password: "invalid",
			Database: "catalog",
			Pool: config.PoolConfig{
				MaxOpen:     1,
				MaxIdle:     1,
				MaxLifetime: time.Second,
			},
			ConnectionTimeout:       0,
			ConnectionRetryInterval: 10 * time.Millisecond,
		},
		Server: config.ServerConfig{
			Port: 18089,
			Pagination: config.PaginationConfig{
				DefaultPageSize: 10,
				MaxPageSize:     100,
				DefaultFirst:    10,
				MaxFirst:        100,
			},
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Observability: config.ObservabilityConfig{
			ServiceName:    "catalog-graphql",
			ServiceVersion: "test",
			Environment:    "test",
			Logging: config.LoggingConfig{
				Level:  "info",
				Format: "text",
			},
		},
	}

	app, err := New(appCfg, testLogger())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := app.Init(context.Background()); err == nil {
		t.Fatalf("expected init to fail with unreachable database")
	}

	app.stateMu.Lock()
	initialized := app.initialized
	app.stateMu.Unlock()
	if initialized {
		t.Fatalf("app should not be marked initialized after failed Init")
	}
}

func TestNew_RequiresDatabaseName(t *testing.T) {
	cfg := &config.Config{}
	if _, err := New(cfg, testLogger()); err == nil {
		t.Fatalf("expected new to fail without a database name")
	}
}

func TestHealthHandler(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()
	rec := httptest.NewRecorder()
	healthHandler(db, time.Second)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	mock.ExpectPing().WillReturnError(errors.New("gone"))
	rec = httptest.NewRecorder()
	healthHandler(db, time.Second)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

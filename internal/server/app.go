// Package server wires storage, notification, services and the gRPC
// endpoint together and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/config"
	"github.com/dmitrijs2005/messagely/internal/server/notify"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/messagely/internal/server/services"

	gs "github.com/dmitrijs2005/messagely/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	dispatcher     *notify.Dispatcher
	publisher      *notify.ValkeyPublisher
	userService    *services.UserService
	messageService *services.MessageService
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp builds the application from c. Logs go to out. An empty
// DatabaseDSN selects the in-memory store, otherwise the PostgreSQL
// database is opened and migrated.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(c.LogFormat, c.LogLevel, out)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, using in-memory storage")
		app.repomanager = repomanager.NewInMemoryRepositoryManager()
	} else {
		db, err := openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		app.repomanager = repomanager.NewPostgresRepositoryManager()

		if err := app.repomanager.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	var notifier notify.Notifier
	if c.ValkeyAddr != "" {
		pub, err := notify.DialValkey(c.ValkeyAddr)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.publisher = pub
		notifier = notify.NewValkeyNotifier(pub, c.NotifyChannel)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}
	app.dispatcher = notify.NewDispatcher(notifier, logger, c.NotifyWorkers, c.NotifyQueueSize, c.NotifyTimeout)

	app.userService = services.NewUserService(app.db, app.repomanager, c)
	app.messageService = services.NewMessageService(app.db, app.repomanager, app.dispatcher, logger)

	return app, nil
}

// Run serves gRPC until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT
// arrives, then releases resources.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddrGRPC)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.messageService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		return err
	}

	app.logger.Info(context.Background(), "App stopped")
	return nil
}

// Close drains pending notifications, closes connections and flushes the
// logger. It is safe to call more than once.
func (app *App) Close() {
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}
	if app.publisher != nil {
		app.publisher.Close()
		app.publisher = nil
	}
	if app.db != nil {
		_ = app.db.Close()
		app.db = nil
	}
	// stdout and stderr can refuse fsync, so the error is not reported.
	_ = logging.Sync(app.logger)
}

// Main loads the configuration, runs the app and returns the process exit
// code.
func Main() int {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx); err != nil {
		return 1
	}
	return 0
}

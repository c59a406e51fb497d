// Package server initializes and runs the main application server.
// It restores the account directory from its snapshot backend, starts the
// wire and gRPC transports over one shared store, and handles graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophtalk/internal/filex"
	"github.com/dmitrijs2005/gophtalk/internal/logging"
	"github.com/dmitrijs2005/gophtalk/internal/server/config"
	"github.com/dmitrijs2005/gophtalk/internal/server/snapshot"
	"github.com/dmitrijs2005/gophtalk/internal/server/store"
	"github.com/dmitrijs2005/gophtalk/internal/server/wire"

	gs "github.com/dmitrijs2005/gophtalk/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store
	closer func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	snap, closer, err := newSnapshot(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("snapshot init error: %w", err)
	}

	st := store.New(snap, logger)
	if err := st.Load(ctx); err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, fmt.Errorf("directory restore error: %w", err)
	}

	return &App{config: cfg, logger: logger, store: st, closer: closer}, nil
}

// newSnapshot builds the snapshot backend named in the config. The second
// return value releases backend resources and may be nil.
func newSnapshot(ctx context.Context, cfg *config.Config) (snapshot.Snapshot, func() error, error) {
	switch cfg.SnapshotBackend {
	case "file":
		path, err := filex.EnsureParentDir(cfg.SnapshotPath)
		if err != nil {
			return nil, nil, err
		}
		return snapshot.NewFile(path), nil, nil
	case "s3":
		s, err := snapshot.NewS3(ctx, snapshot.S3Options{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Key:          cfg.S3Key,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "postgres":
		p, err := snapshot.NewPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startWireServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := wire.NewServer(app.config.EndpointAddrWire, app.store, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.store, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startWireServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.closer != nil {
		if err := app.closer(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}

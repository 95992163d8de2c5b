package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/infra/metrics"
	"guardian/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolSlowWait      = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary connection (replicas are attached by go-lib) and
// ties its ping, optional migration, and close to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Repositories match constraint failures on GORM's sentinels.
	db.TranslateError = true
	// Multi-step writes go through the transaction manager instead.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}
	if err := params.Metrics.WatchDB(sqlDB, cfg.Env.ServiceName); err != nil {
		return nil, errors.Wrap(err, "register postgres pool metrics")
	}

	watcher := &poolWatcher{db: sqlDB, logger: params.Logger, interval: poolCheckInterval}
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if cfg.Database != nil && cfg.Database.AutoMigrate {
				if err := migrate(ctx, db, params.Logger); err != nil {
					return err
				}
			}

			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tables := model.All()
	if err := db.WithContext(ctx).AutoMigrate(tables...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	logger.Info("schema migrated", slog.Int("tables", len(tables)))

	return nil
}

// poolWatcher logs whenever callers had to wait for a pooled connection
// during the last interval.
type poolWatcher struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.db.Stats()
			w.report(ctx, last, now)
			last = now
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, last, now sql.DBStats) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}
	waited := now.WaitDuration - last.WaitDuration

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)
}

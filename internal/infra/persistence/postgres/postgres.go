package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"directory/config"
	"directory/internal/domain/lifecycle"
	"directory/internal/errors"
	"directory/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the gorm handle (primary plus env-configured replicas). On start
// it pings, migrates when storage.autoMigrate is set and begins sampling the
// pool; on stop it closes the pool.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Multi-statement atomicity comes from TransactionManager.Execute only.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if params.Config.Storage != nil && params.Config.Storage.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Postgres schema migrated")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB.Stats, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool samples the pool every interval into the metrics and logs
// the intervals in which queries had to wait for a connection.
func monitorDBPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			recordPoolSample(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func recordPoolSample(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	metrics.ObserveDBPool(cur.OpenConnections, cur.InUse, waits)

	if waits <= 0 || logger == nil {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waited >= dbPoolWarnDurationThreshold {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}

	logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)
}

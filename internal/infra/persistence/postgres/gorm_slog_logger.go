package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"directory/config"
	"directory/internal/errors"
	logs "directory/internal/infra/log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxLoggedSQLLength = 2048

// gormSlogLogger sends gorm output to slog. Failed statements are errors,
// statements slower than slowThreshold are warnings and, in debug, every
// statement is logged at info. Missing rows are not failures.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{logger: base, level: logger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Storage != nil {
		l.slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed && l.level >= logger.Error:
		level, msg = slog.LevelError, "SQL failed"
	case slow && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Slow SQL"
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "SQL"
	default:
		return
	}

	statement, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", truncateSQL(statement)),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if slow {
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// truncateSQL keeps bulk inserts of seed data from flooding the log.
func truncateSQL(statement string) string {
	if len(statement) <= maxLoggedSQLLength {
		return statement
	}

	return statement[:maxLoggedSQLLength] + "...(truncated)"
}

// loggerFor prefers the request-scoped logger so statements carry the request id.
func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, l.logger)
}

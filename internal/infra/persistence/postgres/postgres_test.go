package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"directory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresPostgresSection(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}

func TestRecordPoolSample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	recordPoolSample(ctx, logger, prev, sql.DBStats{WaitCount: 10, WaitDuration: time.Second, OpenConnections: 3})
	assert.Empty(t, buf.String())

	recordPoolSample(ctx, logger, prev, sql.DBStats{WaitCount: 11, WaitDuration: time.Second + time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	buf.Reset()

	recordPoolSample(ctx, logger, prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 200*time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=100ms")
}

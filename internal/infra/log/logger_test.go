package logs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"directory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "Warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "", want: slog.LevelInfo},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNewLogger_AddsServiceAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "directory"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "debug"
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "service=directory")
	assert.Contains(t, buf.String(), "env=test")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.Same(t, scoped, FromContext(WithLogger(context.Background(), scoped), fallback))
	require.NotNil(t, FromContext(context.Background(), nil))
}

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	t.Parallel()

	var all, errs bytes.Buffer
	f := fanout{
		slog.NewTextHandler(&all, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := slog.New(f).With(slog.String("k", "v"))

	log.Debug("debug")
	log.Error("boom")

	assert.Contains(t, all.String(), "msg=debug")
	assert.Contains(t, all.String(), "msg=boom")
	assert.NotContains(t, errs.String(), "msg=debug")
	assert.Contains(t, errs.String(), "msg=boom k=v")

	assert.True(t, f.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, fanout{}.Enabled(context.Background(), slog.LevelError))
}

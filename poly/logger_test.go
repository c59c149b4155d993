package poly

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelDebug))
	Logger().Debug("probe")
	assert.Contains(t, buf.String(), "msg=probe")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelDebug))
}

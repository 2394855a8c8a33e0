package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("loaded", "elements", 3)
	require.Contains(t, buf.String(), "elements=3")
}

func TestFromContextDefault(t *testing.T) {
	require.Same(t, slog.Default(), FromContext(context.Background()))
}

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpersAreNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug(nil, "ignored")
		Info(nil, "ignored")
		Warn(nil, "ignored")
		Error(nil, "ignored", errors.New("boom"))
	})
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "fetch failed", errors.New("boom"), FieldProvider, "footstats")

	out := buf.String()
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "provider=footstats")
}

func TestWithIsNilSafe(t *testing.T) {
	assert.Nil(t, With(nil, FieldMatch, 1))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	assert.Same(t, logger, With(logger), "unchanged without args")
}

func TestScopedPrefersContextLogger(t *testing.T) {
	var fallbackBuf, ctxBuf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&fallbackBuf, nil))
	scoped := slog.New(slog.NewTextHandler(&ctxBuf, nil))

	ctx := WithLogger(context.Background(), scoped)
	Info(Scoped(ctx, fallback, FieldMatch, 9001), "lineup built")
	assert.Zero(t, fallbackBuf.Len())
	assert.Contains(t, ctxBuf.String(), "match_id=9001")

	Info(Scoped(context.Background(), fallback, FieldCompetition, 1), "ranking fetched")
	assert.Contains(t, fallbackBuf.String(), "competition_id=1")
}

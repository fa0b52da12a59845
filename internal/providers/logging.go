package providers

import (
	"context"
	"log/slog"

	"github.com/foot-analises/foot-stats-service/internal/logging"
)

// logCallFailure reports a failed upstream call on the request logger when
// one is present, tagged with the provider and call names. Rate limits log
// at warn.
func logCallFailure(ctx context.Context, fallback *slog.Logger, provider, call string, err error, args ...any) {
	logger := logging.Scoped(ctx, fallback, logging.FieldProvider, provider, "call", call)
	if rl, ok := AsRateLimitError(err); ok {
		logging.Warn(logger, "provider rate limited", append(args, slog.Duration("retry_after", rl.RetryAfter), slog.Any(logging.FieldError, err))...)
		return
	}
	logging.Error(logger, "provider call failed", err, args...)
}

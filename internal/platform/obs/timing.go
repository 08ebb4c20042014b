package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id carried by ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs an operation's duration (and error, if any) when the returned
// func runs. Use:  defer obs.Time(ctx, log, "plan.geocode")(&err)
func Time(ctx context.Context, log zerolog.Logger, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		ev := log.Info()
		if errp != nil && *errp != nil {
			ev = log.Error().Err(*errp)
		}
		ev.Str("req_id", reqID).
			Str("op", name).
			Int64("dur_ms", time.Since(start).Milliseconds()).
			Send()
	}
}

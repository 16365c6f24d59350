package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id used to correlate timing lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id carried by ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of op through the logger attached to ctx
// (zerolog.Ctx). Use as: defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		log := zerolog.Ctx(ctx)
		ev := log.Info()
		if errp != nil && *errp != nil {
			ev = log.Error().Err(*errp)
		}

		ev.Str("req_id", RequestID(ctx)).
			Str("op", name).
			Int64("dur_ms", time.Since(start).Milliseconds()).
			Msg("op timing")
	}
}

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, peer address, duration, and any error codes/messages.
// Expected client errors (a *connect.Error) are logged at WARN, anything else at ERROR.
// Messages implementing slog.LogValuer are summarized under "request" and "result".
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			peer := req.Peer().Addr

			resp, err := next(ctx, req)

			attrs := []any{"procedure", procedure}
			if v, ok := req.Any().(slog.LogValuer); ok {
				attrs = append(attrs, "request", v)
			}

			duration := time.Since(start).Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					slog.Warn("RPC error", append(attrs,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"peer", peer,
						"duration_ms", duration,
					)...)
				} else {
					slog.Error("RPC error", append(attrs,
						"error", err,
						"peer", peer,
						"duration_ms", duration,
					)...)
				}
			} else {
				if v, ok := resp.Any().(slog.LogValuer); ok {
					attrs = append(attrs, "result", v)
				}
				slog.Info("RPC ok", append(attrs, "duration_ms", duration)...)
			}

			return resp, err
		}
	}
}

package middleware

import (
	"context"
	"net/http"
	"time"

	"patitas-eternas/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const loggerKey ctxKey = "logger"

// RequestLogger cuelga del contexto un logger con request_id/method/path
// y registra cada request terminado con status y duración.
// Debe ir después de chimw.RequestID.
func RequestLogger(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			l := base.With(map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(WithLogger(r.Context(), l)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				l.Warn("request completed", fields)
				return
			}
			l.Info("request completed", fields)
		})
	}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFrom devuelve el logger del request, o uno que descarta todo.
func LoggerFrom(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	return nopLogger
}

var nopLogger = logger.Nop()

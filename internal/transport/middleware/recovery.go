package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dawoodjaved5/soventure-project/pkg/ctxutil"
)

// Recovery turns a panic in a handler into a logged 500 so that one bad
// request never takes the process down.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeError(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}

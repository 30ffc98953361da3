package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"house_price/pkg/errcodes"
	"house_price/pkg/httpx/reply"
	"house_price/pkg/logx"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
					panic(rec)
				}

				logger(ctx).Error(
					"panic in handler",
					slog.String(logx.FieldHTTPMethod, r.Method),
					slog.String(logx.FieldURL, r.URL.Path),
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				// Внутренности паники наружу не отдаём, только supportId.
				reply.Problem(ctx, w, http.StatusInternalServerError, errcodes.InternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

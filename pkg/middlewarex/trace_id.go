package middlewarex

import (
	"net/http"
	"regexp"

	"house_price/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// Чужой X-Trace-Id попадает в логи и в supportId ответа, поэтому
// принимаем только короткие идентификаторы без спецсимволов.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`) //nolint:gochecknoglobals

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(headerNameTraceID))

		if !validTraceID.MatchString(traceID.String()) {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

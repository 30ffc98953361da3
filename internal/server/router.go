package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"house_price/pkg/logx"
	"house_price/pkg/middlewarex"
)

type RouterOptions struct {
	Logger              *slog.Logger
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
}

// NewRouter собирает chi-роутер со стандартной цепочкой middleware.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(opts.Logger),
		middlewarex.Recovery,
		middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

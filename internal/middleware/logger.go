package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
)

// Logger returns request logging middleware. It assigns the request ID
// first, so the X-Request-ID response header matches the logged requestID.
// Output is JSON outside of the development environment. Health and metrics
// probes are logged at most once per quiet-down period.
func Logger(service, env string) func(http.Handler) http.Handler {
	return newLogger(service, env, os.Stdout)
}

func newLogger(service, env string, w io.Writer) func(http.Handler) http.Handler {
	logger := httplog.NewLogger(service, httplog.Options{
		JSON:             env != "development",
		LogLevel:         slog.LevelInfo,
		Concise:          true,
		MessageFieldName: "message",
		Writer:           w,
		Tags: map[string]string{
			"env": env,
		},
		QuietDownRoutes: []string{
			"/health",
			"/metrics",
		},
		QuietDownPeriod: 10 * time.Second,
	})

	return chi.Chain(
		RequestID,
		httplog.Handler(logger),
		chimw.Recoverer,
	).Handler
}

package handlers

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"

	"todolist/internal/log"
)

// RequestLogger logs every request with its status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		var event *zerolog.Event
		switch {
		case m.Code >= 500:
			event = log.Error()
		case m.Code >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.RequestURI()).
			Int("status", m.Code).
			Dur("duration", m.Duration).
			Int64("bytes", m.Written).
			Msg("request")
	})
}

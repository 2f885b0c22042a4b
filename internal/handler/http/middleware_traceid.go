package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a child logger carrying trace_id to the request
// context. The id is taken from X-Trace-ID or generated and always echoed
// back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

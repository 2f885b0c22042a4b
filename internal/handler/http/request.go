package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Request headers that feed models.RequestContext.
const (
	sourceIDHeader  = "X-Source-ID"
	localTimeHeader = "X-Local-Time"
)

// maxBodySize bounds request bodies; images are the largest payload.
const maxBodySize = 16 << 20

// requestContext builds the mutation context of r. A missing or malformed
// X-Local-Time leaves Time zero so the service falls back to its clock.
func requestContext(r *http.Request) models.RequestContext {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	reqCtx := models.RequestContext{
		SessionID: sessionID,
		SourceID:  r.Header.Get(sourceIDHeader),
	}
	if raw := r.Header.Get(localTimeHeader); raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			reqCtx.Time = t
		}
	}
	return reqCtx
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

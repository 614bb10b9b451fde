package safe

import (
	"context"
	"io"
	"net/http"

	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
)

// Write writes data to w. A failed write is logged; by then the response
// is already committed and there is nobody left to return the error to.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if n, err := w.Write(data); err != nil {
		logging.From(ctx).Warn("failed to write response",
			"error", err,
			"written", n,
			"size", len(data),
		)
	}
}

// Respond sends a complete HTTP response with the given status and content type
func Respond(ctx context.Context, w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	Write(ctx, w, body)
}

package response

import (
	"net/http"

	appCtx "github.com/staffdeck/directory-service/internal/pkg/context"
)

// RequestIDFromContext extracts the request id set by the middleware.
func RequestIDFromContext(r *http.Request) string {
	if reqID, ok := appCtx.RequestID(r.Context()); ok {
		return reqID
	}
	return ""
}

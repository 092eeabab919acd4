package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/erplora/OnlineBooking-Service/internal/api/handlers"
)

// HubIDHeader carries the authenticated hub for every admin request.
// The gateway in front of this service validates the session and
// injects the header.
const HubIDHeader = "X-Hub-ID"

type hubContextKey struct{}

// HubAuth rejects requests without a valid hub header and stores the
// hub id in the request context.
func HubAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HubIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing hub identification")
			return
		}

		hubID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || hubID <= 0 {
			handlers.RespondUnauthorized(w, "invalid hub identification")
			return
		}

		ctx := context.WithValue(r.Context(), hubContextKey{}, hubID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetHubID returns the authenticated hub from the context.
func GetHubID(ctx context.Context) (int64, bool) {
	hubID, ok := ctx.Value(hubContextKey{}).(int64)
	return hubID, ok
}

package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes caps how much of an unread body is drained. Bigger leftovers
// just close the body and give up the keep-alive connection.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains and closes whatever the handler left of the
// request body so keep-alive connections can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}

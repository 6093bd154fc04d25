package middleware

import (
	"net"
	"net/http"

	"github.com/Fun-Fox/xhs-ai-note-styler/pkg/ctxutil"
)

// ClientIP returns middleware that stores the peer address (without port)
// in the context. Forwarding headers are ignored.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), remoteHost(r.RemoteAddr))))
		})
	}
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

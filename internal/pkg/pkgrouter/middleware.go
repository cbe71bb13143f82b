package pkgrouter

import "net/http"

// Middleware wraps an http.Handler. The gate and the built-in recover,
// correlation and logging layers all have this shape.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws[0] runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

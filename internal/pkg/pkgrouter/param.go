package pkgrouter

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type routeContextKey struct{}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// RouteFromContext returns the registered route pattern (e.g. "/orders/:id")
// serving the request, or "" outside the router.
func RouteFromContext(ctx context.Context) string {
	route, _ := ctx.Value(routeContextKey{}).(string)
	return route
}

// WithRoute stores a route pattern in ctx. The router does this for every
// registered route; it is exported for middleware tests.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeContextKey{}, route)
}

func withRoute(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithRoute(r.Context(), route)))
		})
	}
}

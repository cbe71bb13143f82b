// Package pkglog configures slog for the service.
//
// Records are JSON with "ts", "severity" and "file" keys, tagged with the
// service name and, inside a request, the correlation ID set by the router.
package pkglog

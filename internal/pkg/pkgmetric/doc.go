// Package pkgmetric exposes Prometheus metrics for the service.
//
// It keeps its own registry instead of the global one so tests can build
// independent instances.
package pkgmetric

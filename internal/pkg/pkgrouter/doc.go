// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, logging, recovery and correlation ID propagation.
// Handler errors are rendered through the pkgerror catalogue: the caller sees
// the "(Ekk)" message and, for internal errors, only the reference.
package pkgrouter

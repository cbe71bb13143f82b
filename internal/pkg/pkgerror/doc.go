// Package pkgerror defines the error catalogue used at the HTTP boundary.
//
// Every caller-visible failure is an *Error carrying an HTTP status and a
// message prefixed with its numeric code, for example "(E01) Parameter id required".
// Errors are built through one of three constructors:
//   - NewCatalogued for pre-registered conditions (bad parameter, credentials,
//     forbidden access, rate limit, ...).
//   - NewInternal / WrapInternal for unexpected failures. The message only shows
//     an opaque reference; the real cause stays server-side.
//   - NewBusinessError for ad-hoc domain rule violations (always 422).
//
// The catalogue itself is fixed at build time. Asking for a kind that has no
// entry is a programming mistake and panics.
package pkgerror

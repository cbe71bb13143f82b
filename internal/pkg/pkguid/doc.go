// Package pkguid provides helpers for generating unique identifiers.
//
// Callers depend on the StringID / NumberID interfaces instead of a concrete
// strategy:
//   - UUID (v7) for request correlation IDs.
//   - RandomUUID (v4) for error references shown to API callers.
//   - Snowflake for numeric resource IDs such as orders.
package pkguid
